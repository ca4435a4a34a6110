package models

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mmdatafocus/grange_backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID             int       `gorm:"primary_key" json:"id"`
	Names          string    `gorm:"size:150;not null" json:"names"`
	FirstName      string    `gorm:"size:100;not null" json:"firstName"`
	LastName       string    `gorm:"size:100;not null" json:"lastName"`
	Dni            *string   `gorm:"size:20" json:"dni"`
	Photo          *string   `gorm:"size:255" json:"photo"`
	Email          string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Phone          string    `gorm:"size:20" json:"phone"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	AccessActive   bool      `gorm:"not null;default:true" json:"access_active"`
	AccessInactive bool      `gorm:"not null;default:false" json:"access_inactive"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UserRole links a user to one of its roles.
type UserRole struct {
	UserId    int       `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	RoleId    int       `gorm:"primaryKey;autoIncrement:false;index" json:"role_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Access is the read partition a user may see: active and/or inactive entities.
type Access struct {
	Active   bool `json:"active"`
	Inactive bool `json:"inactive"`
}

func (u *User) AccessLifeCycle() *Access {
	return &Access{Active: u.AccessActive, Inactive: u.AccessInactive}
}

type UserInput struct {
	Names     string  `json:"names" validate:"required,max=150"`
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName" validate:"required,max=100"`
	Dni       *string `json:"dni" validate:"omitempty,max=20"`
	Photo     *string `json:"photo"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	Phone     string  `json:"phone" validate:"required"`
	Password  string  `json:"password" validate:"required,min=6"`
}

type UserUpdate struct {
	Names     *string `json:"names" validate:"omitempty,min=1,max=150"`
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Dni       *string `json:"dni" validate:"omitempty,max=20"`
	Photo     *string `json:"photo"`
	Email     *string `json:"email" validate:"omitempty,email,max=100"`
	Phone     *string `json:"phone"`
}

type AccessUpdate struct {
	Active   *bool `json:"active"`
	Inactive *bool `json:"inactive"`
}

type AuthData struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	TokenExpiration string `json:"tokenExpiration"`
	TokenRefresh    string `json:"token_refresh"`
}

type UserStore struct{ s *Store }

// RefreshTokenKey is where the refresh credential of a user on one client ip lives.
func RefreshTokenKey(userId int, clientIP string) string {
	return fmt.Sprintf("%d_token_%s", userId, clientIP)
}

func RefreshTokenPrefix(userId int) string {
	return fmt.Sprintf("%d_token_", userId)
}

// Login checks the credentials and issues an access and a refresh credential.
// The refresh credential is stored per user and client ip.
func (st *UserStore) Login(ctx context.Context, email string, password string) (*AuthData, error) {
	var user User
	if err := st.s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrUnauthenticated("User not found")
		}
		st.s.logError("Login", "find user", email, err)
		return nil, err
	}
	if err := utils.ComparePassword(user.Password, password); err != nil {
		return nil, utils.ErrUnauthenticated("Incorrect password")
	}
	clientIP, _ := utils.GetClientIPFromContext(ctx)
	return st.issueCredentials(ctx, &user, clientIP)
}

// Refresh rotates both credentials if refreshToken is the one stored for the client ip.
func (st *UserStore) Refresh(ctx context.Context, refreshToken string, clientIP string) (*AuthData, error) {
	claims, err := st.s.tokens.ValidateRefresh(refreshToken)
	if err != nil {
		return nil, utils.ErrUnauthenticated("Invalid refresh token")
	}
	stored, ok, err := st.s.cache.GetValue(ctx, RefreshTokenKey(claims.UserId, clientIP))
	if err != nil {
		st.s.logError("Refresh", "get refresh token", claims.UserId, err)
		return nil, err
	}
	if !ok || stored != refreshToken {
		return nil, utils.ErrUnauthenticated("Invalid refresh token")
	}
	user, err := st.ByID(ctx, claims.UserId)
	if err != nil {
		return nil, utils.ErrUnauthenticated("User not found")
	}
	return st.issueCredentials(ctx, user, clientIP)
}

// Revoke drops every refresh credential of the user.
func (st *UserStore) Revoke(ctx context.Context, userId int) error {
	if err := st.s.cache.DeletePrefix(ctx, RefreshTokenPrefix(userId)); err != nil {
		st.s.logError("Revoke", "delete refresh tokens", userId, err)
		return err
	}
	return nil
}

func (st *UserStore) issueCredentials(ctx context.Context, user *User, clientIP string) (*AuthData, error) {
	token, err := st.s.tokens.GenerateAccess(user.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := st.s.tokens.GenerateRefresh(user.ID)
	if err != nil {
		return nil, err
	}
	key := RefreshTokenKey(user.ID, clientIP)
	if err := st.s.cache.SetValue(ctx, key, refresh, st.s.tokens.RefreshLifetime()); err != nil {
		st.s.logError("IssueCredentials", "store refresh token", key, err)
		return nil, err
	}
	return &AuthData{
		User:            user,
		Token:           token,
		TokenExpiration: strconv.FormatInt(st.s.tokens.AccessLifetime().Milliseconds(), 10),
		TokenRefresh:    refresh,
	}, nil
}

func (st *UserStore) Signup(ctx context.Context, input *UserInput) (*User, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	phone, err := utils.NormalizePhoneNumber(input.Phone, st.s.phoneRegion)
	if err != nil {
		return nil, err
	}
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := User{
		Names:          input.Names,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Dni:            input.Dni,
		Photo:          input.Photo,
		Email:          input.Email,
		Phone:          phone,
		Password:       string(hashed),
		AccessActive:   true,
		AccessInactive: false,
	}
	if err := st.s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.ErrInvalidInput("Email already registered")
		}
		st.s.logError("Signup", "create user", input.Email, err)
		return nil, err
	}
	return &user, nil
}

func (st *UserStore) Update(ctx context.Context, id int, input *UserUpdate) (*User, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	user, err := st.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if input.Names != nil {
		updates["names"] = *input.Names
	}
	if input.FirstName != nil {
		updates["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		updates["last_name"] = *input.LastName
	}
	if input.Dni != nil {
		updates["dni"] = *input.Dni
	}
	if input.Photo != nil {
		updates["photo"] = *input.Photo
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Phone != nil {
		phone, err := utils.NormalizePhoneNumber(*input.Phone, st.s.phoneRegion)
		if err != nil {
			return nil, err
		}
		updates["phone"] = phone
	}
	if len(updates) > 0 {
		if err := st.s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
			if utils.IsDuplicateKey(err) {
				return nil, utils.ErrInvalidInput("Email already registered")
			}
			st.s.logError("UpdateUser", "update", id, err)
			return nil, err
		}
	}
	return st.ByID(ctx, id)
}

// Delete removes the user with its role links and every cache key of the user.
func (st *UserStore) Delete(ctx context.Context, id int) (bool, error) {
	err := st.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrNotFound("Invalid idUser")
		}
		return tx.Where("user_id = ?", id).Delete(&UserRole{}).Error
	})
	if err != nil {
		return false, err
	}
	if err := st.s.cache.DeletePrefix(ctx, fmt.Sprintf("%d_", id)); err != nil {
		st.s.logError("DeleteUser", "delete cache prefix", id, err)
		return false, err
	}
	return true, nil
}

// AddRole links a role to the user and drops the user's cached permission set.
func (st *UserStore) AddRole(ctx context.Context, userId int, roleId int) (bool, error) {
	if _, err := st.ByID(ctx, userId); err != nil {
		return false, err
	}
	if _, err := st.s.Roles.ByID(ctx, roleId); err != nil {
		return false, err
	}
	link := UserRole{UserId: userId, RoleId: roleId}
	if err := st.s.db.WithContext(ctx).Where(link).FirstOrCreate(&link).Error; err != nil {
		st.s.logError("AddRoleToUser", "create link", link, err)
		return false, err
	}
	if err := st.s.Permissions.Forget(ctx, userId); err != nil {
		return false, err
	}
	return true, nil
}

func (st *UserStore) DeleteRole(ctx context.Context, userId int, roleId int) (bool, error) {
	result := st.s.db.WithContext(ctx).Where("user_id = ? AND role_id = ?", userId, roleId).Delete(&UserRole{})
	if result.Error != nil {
		st.s.logError("DeleteRoleOfUser", "delete link", roleId, result.Error)
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, utils.ErrNotFound("User does not hold this role")
	}
	if err := st.s.Permissions.Forget(ctx, userId); err != nil {
		return false, err
	}
	return true, nil
}

// ResetPassword changes the password of the current user.
func (st *UserStore) ResetPassword(ctx context.Context, oldPassword string, newPassword string) (bool, error) {
	user, err := st.Current(ctx)
	if err != nil {
		return false, err
	}
	if err := utils.ComparePassword(user.Password, oldPassword); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, utils.ErrUnauthenticated("Incorrect password")
		}
		return false, err
	}
	if len(newPassword) < 6 {
		return false, utils.ErrInvalidInput("Invalid input: Password (min)")
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return false, err
	}
	if err := st.s.db.WithContext(ctx).Model(user).Update("password", string(hashed)).Error; err != nil {
		st.s.logError("ResetPasswordOfUser", "update", user.ID, err)
		return false, err
	}
	return true, nil
}

func (st *UserStore) UpdateAccess(ctx context.Context, userId int, access *AccessUpdate) (bool, error) {
	updates := map[string]interface{}{}
	if access.Active != nil {
		updates["access_active"] = *access.Active
	}
	if access.Inactive != nil {
		updates["access_inactive"] = *access.Inactive
	}
	if len(updates) == 0 {
		return true, nil
	}
	result := st.s.db.WithContext(ctx).Model(&User{}).Where("id = ?", userId).Updates(updates)
	if result.Error != nil {
		st.s.logError("UpdateAccessOfUser", "update", userId, result.Error)
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := st.ByID(ctx, userId); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (st *UserStore) ByID(ctx context.Context, id int) (*User, error) {
	var user User
	if err := st.s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, utils.NotFoundOr(err, "Invalid idUser")
	}
	return &user, nil
}

func (st *UserStore) ByIDs(ctx context.Context, ids []int) ([]*User, error) {
	var users []*User
	if err := st.s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (st *UserStore) ByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := st.s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, utils.NotFoundOr(err, "User not found")
	}
	return &user, nil
}

// Current is the user behind the request credential.
func (st *UserStore) Current(ctx context.Context) (*User, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		return nil, utils.ErrUnauthenticated("You are not authenticated")
	}
	user, err := st.ByID(ctx, userId)
	if err != nil {
		if utils.IsKind(err, utils.KindNotFound) {
			return nil, utils.ErrUnauthenticated("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (st *UserStore) List(ctx context.Context) ([]*User, error) {
	var users []*User
	if err := st.s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		st.s.logError("Users", "find", nil, err)
		return nil, err
	}
	return users, nil
}

// RoleIdsOf returns the role ids held by each user.
func (st *UserStore) RoleIdsOf(ctx context.Context, userIds []int) (map[int][]int, error) {
	var links []UserRole
	if err := st.s.db.WithContext(ctx).Where("user_id IN ?", userIds).Order("created_at").Find(&links).Error; err != nil {
		return nil, err
	}
	result := make(map[int][]int, len(userIds))
	for _, l := range links {
		result[l.UserId] = append(result[l.UserId], l.RoleId)
	}
	return result, nil
}
