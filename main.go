package main

import (
	"log"
	"time"

	_ "github.com/anoixa/photo-album/docs"

	"github.com/anoixa/photo-album/config"

	"github.com/anoixa/photo-album/cmd"
)

// @title                       Photo Album API
// @version                     1.0
// @description                 REST API for managing photo albums.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
func init() {
	var cstZone = time.FixedZone("CST", 8*3600) // 东八
	time.Local = cstZone
}

func main() {
	log.Printf("photo album %s (%s)", config.Version, config.CommitHash)
	cmd.Execute()
}
