// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateRoute "campustrack_backend/internals/features/academics/certificates/route"
	eventRoute "campustrack_backend/internals/features/academics/events/route"
	markRoute "campustrack_backend/internals/features/academics/marks/route"
	postRoute "campustrack_backend/internals/features/feed/posts/route"
	newsRoute "campustrack_backend/internals/features/home/news/route"
	notificationRoute "campustrack_backend/internals/features/home/notifications/route"
	authRoute "campustrack_backend/internals/features/users/auth/route"
	userRoute "campustrack_backend/internals/features/users/user/route"
)

var startTime time.Time

// SetupRoutes memasang semua route aplikasi.
// Konvensi prefix: /api/auth (auth), /api/public (tanpa login),
// /api/u (login), /api/t (teacher approved), /api/a (admin).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up PostRoutes...")
	postRoute.PostRoutes(app, db)

	log.Println("[INFO] Setting up CertificateRoutes...")
	certificateRoute.CertificateRoutes(app, db)

	log.Println("[INFO] Setting up EventRoutes...")
	eventRoute.EventRoutes(app, db)

	log.Println("[INFO] Setting up MarkRoutes...")
	markRoute.MarkRoutes(app, db)

	log.Println("[INFO] Setting up NewsRoutes...")
	newsRoute.NewsRoutes(app, db)

	log.Println("[INFO] Setting up NotificationRoutes...")
	notificationRoute.NotificationRoutes(app, db)
}
