package model

// UserProfile is a read-only display projection of a user. This subsystem
// never writes it; the rows belong to the identity side of the product.
type UserProfile struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"id"`
	Username  string `gorm:"column:username;size:255" json:"username"`
	FullName  string `gorm:"column:full_name;size:255" json:"full_name"`
	Email     string `gorm:"column:email;size:255" json:"email"`
	AvatarURL string `gorm:"column:avatar_url;size:1024" json:"avatar_url"`
}

func (UserProfile) TableName() string {
	return "users"
}
