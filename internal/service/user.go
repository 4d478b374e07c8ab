package service

import (
	"ClipHub/internal/repo"
	"ClipHub/model"
	"ClipHub/utils"
	"errors"
	"fmt"
	"log"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// RegisterUser creates an account with a bcrypt-hashed password.
// Usernames are unique with a case-sensitive exact match.
func RegisterUser(username, email, password string) error {
	var existing model.User
	err := repo.Db.Where("user_name = ?", username).First(&existing).Error
	if err == nil {
		return fmt.Errorf("username %w", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user := model.User{
		UserName: username,
		Email:    email,
		Password: utils.GetPwd(password),
	}
	if err := repo.Db.Create(&user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("username %w", ErrConflict)
		}
		return err
	}

	if utils.SMTPConfigured() {
		go func(to, name string) {
			if err := utils.SendWelcomeMail(to, name); err != nil {
				log.Printf("send welcome mail to %s failed: %v", to, err)
			}
		}(user.Email, user.UserName)
	}
	return nil
}

// VerifyCredentials checks username and password, failing closed on
// any mismatch.
func VerifyCredentials(username, password string) (*model.User, error) {
	var user model.User
	if err := repo.Db.Where("user_name = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !utils.CheckPwd(password, user.Password) {
		return nil, ErrUnauthorized
	}
	return &user, nil
}

// FindUserByUsername returns the user with the given username.
func FindUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := repo.Db.Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByID returns the user with the given ID.
func FindUserByID(id uint64) (*model.User, error) {
	var user model.User
	if err := repo.Db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
