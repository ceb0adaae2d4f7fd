package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/anoixa/photo-album/config"
	"github.com/anoixa/photo-album/database/models"
	"github.com/anoixa/photo-album/internal/app"
	"github.com/anoixa/photo-album/utils"
	"github.com/anoixa/photo-album/utils/password"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		plain, _ := cmd.Flags().GetString("password")

		container := openAppDatabase()
		defer container.Close()

		generated, err := createUser(container, username, plain)
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		if generated != "" {
			log.Printf("User %s created, password: %s", username, generated)
			return
		}
		log.Printf("User %s created", username)
	},
}

var userPasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Reset the password of a user",
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		plain, _ := cmd.Flags().GetString("password")

		container := openAppDatabase()
		defer container.Close()

		generated, err := resetPassword(container, username, plain)
		if err != nil {
			log.Fatalf("Failed to reset password: %v", err)
		}
		if generated != "" {
			log.Printf("Password of %s reset to: %s", username, generated)
			return
		}
		log.Printf("Password of %s updated", username)
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userPasswordCmd)

	for _, c := range []*cobra.Command{userCreateCmd, userPasswordCmd} {
		c.Flags().String("username", "", "Username")
		c.Flags().String("password", "", "Password, a random one is generated when empty")
		_ = c.MarkFlagRequired("username")
	}
}

// openAppDatabase 打开配置中的数据库并同步表结构，供一次性命令使用
func openAppDatabase() *app.Container {
	config.InitConfig()
	container := app.NewContainer(config.Get())
	if err := container.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := container.GetDatabaseProvider().AutoMigrate(); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}
	return container
}

// createUser 创建用户，密码为空时生成随机密码并返回
func createUser(container *app.Container, username, plain string) (string, error) {
	if username == "" {
		return "", errors.New("username is required")
	}

	repo := container.Repositories.Accounts
	exists, err := repo.UserExists(username)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("user %s already exists", username)
	}

	generated, plain, err := passwordOrRandom(plain)
	if err != nil {
		return "", err
	}
	hashed, err := password.Hash(plain)
	if err != nil {
		return "", err
	}

	if err := repo.CreateUser(&models.User{Username: username, Password: hashed}); err != nil {
		return "", err
	}
	return generated, nil
}

// resetPassword 重置用户密码，密码为空时生成随机密码并返回
func resetPassword(container *app.Container, username, plain string) (string, error) {
	generated, plain, err := passwordOrRandom(plain)
	if err != nil {
		return "", err
	}
	hashed, err := password.Hash(plain)
	if err != nil {
		return "", err
	}

	err = container.Repositories.Accounts.UpdatePassword(username, hashed)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("user %s not found", username)
	}
	if err != nil {
		return "", err
	}
	return generated, nil
}

func passwordOrRandom(plain string) (generated, result string, err error) {
	if plain != "" {
		return "", plain, nil
	}
	generated, err = utils.GenerateRandomString(16)
	if err != nil {
		return "", "", err
	}
	return generated, generated, nil
}
