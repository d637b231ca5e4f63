package model

// Article is a link-style post owned by a user. UsuarioID is nullable in the
// schema but is always set from the authenticated identity on creation; a
// nil owner is only reachable if the owner is forcibly cleared.
type Article struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Titulo    string `json:"titulo" gorm:"size:256"`
	Descricao string `json:"descricao" gorm:"size:256"`
	URLFonte  string `json:"url_fonte" gorm:"column:url_fonte;size:256"`
	UsuarioID *uint  `json:"usuario_id" gorm:"index"`
}

// TableName keeps the original table name.
func (Article) TableName() string { return "artigos" }
