package model

// User represents an account in the system. The wire format keeps the
// original Portuguese field names (`usuarios` table), including the email
// unique index used as the login key.
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Nome      string `json:"nome" gorm:"size:256"`
	Sobrenome string `json:"sobrenome" gorm:"size:256"`
	Email     string `json:"email" gorm:"uniqueIndex;size:256;not null"`
	Senha     string `json:"-" gorm:"size:256;not null"` // bcrypt digest, never exposed in JSON
	EhAdmin   bool   `json:"eh_admin" gorm:"default:false"`

	// Relations
	Artigos []Article `json:"artigos,omitempty" gorm:"foreignKey:UsuarioID"`
}

// TableName keeps the original table name.
func (User) TableName() string { return "usuarios" }
