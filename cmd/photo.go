package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/anoixa/photo-album/database/models"
	"github.com/anoixa/photo-album/internal/app"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// photoCmd 照片管理，HTTP 接口不提供照片上传，通过命令行录入
var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage photos",
}

var photoAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a photo",
	Run: func(cmd *cobra.Command, args []string) {
		userID, _ := cmd.Flags().GetUint("user-id")
		title, _ := cmd.Flags().GetString("title")
		rawURL, _ := cmd.Flags().GetString("url")
		comment, _ := cmd.Flags().GetString("comment")

		container := openAppDatabase()
		defer container.Close()

		photo, err := addPhoto(container, userID, title, rawURL, comment)
		if err != nil {
			log.Fatalf("Failed to add photo: %v", err)
		}
		log.Printf("Photo %d created", photo.ID)
	},
}

var photoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List photos of a user",
	Long:  `List photos uploaded by the user together with photos linked to any of the user's albums.`,
	Run: func(cmd *cobra.Command, args []string) {
		userID, _ := cmd.Flags().GetUint("user-id")

		container := openAppDatabase()
		defer container.Close()

		photos, err := container.Repositories.Photos.ListByUser(userID)
		if err != nil {
			log.Fatalf("Failed to list photos: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tURL")
		for _, p := range photos {
			fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.Title, p.URL)
		}
		_ = w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(photoCmd)
	photoCmd.AddCommand(photoAddCmd)
	photoCmd.AddCommand(photoListCmd)

	photoAddCmd.Flags().Uint("user-id", 0, "ID of the uploading user")
	photoAddCmd.Flags().String("title", "", "Photo title")
	photoAddCmd.Flags().String("url", "", "Photo URL")
	photoAddCmd.Flags().String("comment", "", "Photo comment")
	_ = photoAddCmd.MarkFlagRequired("user-id")
	_ = photoAddCmd.MarkFlagRequired("title")
	_ = photoAddCmd.MarkFlagRequired("url")

	photoListCmd.Flags().Uint("user-id", 0, "ID of the user")
	_ = photoListCmd.MarkFlagRequired("user-id")
}

// photoInput 命令行录入照片的字段，规则与相册一致
type photoInput struct {
	Title   string `validate:"required,min=3"`
	URL     string `validate:"required,url"`
	Comment string
}

var photoValidator = validator.New()

func addPhoto(container *app.Container, userID uint, title, rawURL, comment string) (*models.Photo, error) {
	in := photoInput{
		Title:   strings.TrimSpace(title),
		URL:     strings.TrimSpace(rawURL),
		Comment: strings.TrimSpace(comment),
	}
	if err := photoValidator.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fe := verrs[0]
			return nil, fmt.Errorf("invalid %s: %q fails %q", strings.ToLower(fe.Field()), fe.Value(), fe.Tag())
		}
		return nil, err
	}

	user, err := container.Repositories.Accounts.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}

	photo := &models.Photo{
		Title:   in.Title,
		URL:     in.URL,
		Comment: in.Comment,
		UserID:  &user.ID,
	}
	if err := container.Repositories.Photos.CreatePhoto(photo); err != nil {
		return nil, err
	}
	return photo, nil
}
