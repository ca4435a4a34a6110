package models

import (
	"gorm.io/gorm"
)

func (Shed) TableName() string          { return "sheds" }
func (Pool) TableName() string          { return "pools" }
func (Cuy) TableName() string           { return "cuys" }
func (CuyWeight) TableName() string     { return "cuy_weights" }
func (CuyDeath) TableName() string      { return "cuy_deaths" }
func (CuySaca) TableName() string       { return "cuy_sacas" }
func (Mobilization) TableName() string  { return "mobilizations" }
func (User) TableName() string          { return "users" }
func (UserRole) TableName() string      { return "user_roles" }
func (Role) TableName() string          { return "roles" }
func (RoleOperation) TableName() string { return "role_operations" }
func (Operation) TableName() string     { return "operations" }

func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{}, &Role{}, &Operation{}, &UserRole{}, &RoleOperation{},
		&Shed{}, &Pool{}, &Cuy{}, &CuyWeight{}, &CuyDeath{}, &CuySaca{},
		&Mobilization{},
	)
}
