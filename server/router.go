package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/trackwell/trackwell/internal/op"
	"github.com/trackwell/trackwell/server/handles"
)

// Init wires the exposed surface onto a gin engine.
func Init(e *gin.Engine, svc *op.Service, corsOrigins []string) {
	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) > 0 {
		corsCfg.AllowOrigins = corsOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-User-ID")
	e.Use(cors.New(corsCfg))

	taskH := handles.NewTaskHandler(svc)
	commentH := handles.NewCommentHandler(svc)
	attachmentH := handles.NewAttachmentHandler(svc)

	api := e.Group("/api")

	tasks := api.Group("/tasks")
	tasks.GET("", taskH.List)
	tasks.POST("", taskH.Create)
	tasks.GET("/stats", taskH.Stats)
	tasks.GET("/recent", taskH.Recent)
	tasks.GET("/assigned/:userID", taskH.AssignedTo)
	tasks.GET("/:id", taskH.Get)
	tasks.PUT("/:id", taskH.Update)
	tasks.DELETE("/:id", taskH.Delete)
	tasks.POST("/:id/status", taskH.ChangeStatus)
	tasks.POST("/:id/priority", taskH.ChangePriority)
	tasks.POST("/:id/assign", taskH.Assign)
	tasks.GET("/:id/history", taskH.History)
	tasks.GET("/:id/comments", commentH.List)
	tasks.POST("/:id/comments", commentH.Add)
	tasks.GET("/:id/attachments", attachmentH.List)
	tasks.POST("/:id/attachments", attachmentH.Record)
	tasks.POST("/:id/attachments/upload", attachmentH.Upload)

	comments := api.Group("/comments")
	comments.PUT("/:id", commentH.Update)
	comments.DELETE("/:id", commentH.Delete)

	attachments := api.Group("/attachments")
	attachments.DELETE("/:id", attachmentH.Delete)
}
