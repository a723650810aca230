package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/trackwell/trackwell/internal/bootstrap"
	"github.com/trackwell/trackwell/internal/conf"
	"github.com/trackwell/trackwell/internal/objstore"
	"github.com/trackwell/trackwell/internal/op"
	"github.com/trackwell/trackwell/server"
	"github.com/trackwell/trackwell/pkg/utils"
)

var rootCmd = &cobra.Command{
	Use:   "trackwell",
	Short: "Internal work-item tracking service",
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := conf.Load()
		if err != nil {
			return err
		}
		bootstrap.InitLog(cfg.Log)
		database, err := bootstrap.InitDB(cfg.Database)
		if err != nil {
			return err
		}
		objects, err := objstore.NewS3(cfg.S3)
		if err != nil {
			return err
		}
		svc := op.NewService(database, database, database, database, database, objects)

		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()
		engine.Use(gin.Recovery())
		server.Init(engine, svc, cfg.CORSOrigins)
		utils.Log.Infof("listening on %s", cfg.Addr)
		return engine.Run(cfg.Addr)
	},
}

func main() {
	rootCmd.AddCommand(serverCmd)
	if err := rootCmd.Execute(); err != nil {
		utils.Log.Errorf("%+v", err)
		os.Exit(1)
	}
}
