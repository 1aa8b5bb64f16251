package postgres

// UserModel é o model GORM para a tabela users
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    int64  `gorm:"autoCreateTime"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
	DeletedAt    *int64 `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// UrlModel é o model GORM para a tabela urls.
// UserID é nullable: URLs anônimas não têm dono. A FK usa ON DELETE SET NULL.
type UrlModel struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	OriginalURL string     `gorm:"type:varchar(2048);not null;index"`
	ShortCode   string     `gorm:"type:varchar(6);uniqueIndex;not null"`
	UserID      *uint      `gorm:"index"`
	User        *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Clicks      int64      `gorm:"not null;default:0"`
	CreatedAt   int64      `gorm:"autoCreateTime"`
	UpdatedAt   int64      `gorm:"autoUpdateTime"`
	DeletedAt   *int64     `gorm:"index"` // Soft delete
}

func (UrlModel) TableName() string {
	return "urls"
}
