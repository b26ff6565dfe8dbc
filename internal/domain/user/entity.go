// internal/domain/user/entity.go
package user

import (
	"time"
)

// Default role assigned to newly registered users.
const DefaultRole = "cliente"

// User represents a store customer or administrator. Column names follow the
// Spanish database schema so the existing frontend keeps working.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"column:nombre;not null;size:50" json:"nombre"`
	LastName     string    `gorm:"column:apellido;size:50" json:"apellido"`
	Email        string    `gorm:"column:correo_electronico;uniqueIndex;not null;size:100" json:"correoElectronico"`
	PasswordHash string    `gorm:"column:hash_contrasena;size:255" json:"-"`
	Phone        string    `gorm:"column:numero_telefono;size:20" json:"numeroTelefono"`
	Address      string    `gorm:"column:direccion;size:255" json:"direccion"`
	City         string    `gorm:"column:ciudad;size:100" json:"ciudad"`
	Country      string    `gorm:"column:pais;size:100" json:"pais"`
	PostalCode   string    `gorm:"column:codigo_postal;size:10" json:"codigoPostal"`
	Role         string    `gorm:"column:rol;size:20;default:'cliente'" json:"rol"`
	CreatedAt    time.Time `gorm:"column:creado_en" json:"creadoEn"`
	UpdatedAt    time.Time `gorm:"column:actualizado_en" json:"actualizadoEn"`
}

// TableName overrides the table name
func (User) TableName() string { return "usuarios" }
