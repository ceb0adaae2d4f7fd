package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/anoixa/photo-album/internal/app"
	"github.com/anoixa/photo-album/internal/auth"
	"github.com/spf13/cobra"
)

// tokenCmd 为指定用户签发访问令牌，便于调试和脚本调用
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for a user",
	Long:  `Issue an access token signed with the configured jwt_secret. The secret must be set, otherwise the token would not be accepted by a running server.`,
	Run: func(cmd *cobra.Command, args []string) {
		userID, _ := cmd.Flags().GetUint("user-id")
		expiresIn, _ := cmd.Flags().GetDuration("expires-in")

		container := openAppDatabase()
		defer container.Close()

		token, expiry, err := issueToken(container, userID, expiresIn)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
		log.Printf("Token expires at %s", expiry.Format(time.RFC3339))
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().Uint("user-id", 0, "ID of the user the token is issued for")
	tokenCmd.Flags().Duration("expires-in", 0, "Token lifetime, defaults to jwt_expires_in")
	_ = tokenCmd.MarkFlagRequired("user-id")
}

func issueToken(container *app.Container, userID uint, expiresIn time.Duration) (string, time.Time, error) {
	cfg := container.GetConfig()
	if cfg.JWTSecret == "" {
		return "", time.Time{}, errors.New("jwt_secret is not configured")
	}
	if expiresIn <= 0 {
		expiresIn = cfg.JWTExpiresIn
	}

	user, err := container.Repositories.Accounts.GetUserByID(userID)
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		return "", time.Time{}, fmt.Errorf("user %d not found", userID)
	}

	jwtService, err := auth.NewJWTService(cfg.JWTSecret, expiresIn)
	if err != nil {
		return "", time.Time{}, err
	}
	return jwtService.GenerateAccessToken(user.Username, user.ID)
}
