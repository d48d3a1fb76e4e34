package firebase

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"

	"github.com/ummah-orphan-care/donations/common"
)

var (
	// App : Firebase App
	App *firebase.App
)

func init() {
	ctx := context.Background()

	var err error

	App, err = firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID})
	if err != nil {
		log.Fatalln(err)
	}
}
