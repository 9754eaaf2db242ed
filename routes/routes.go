package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartkart/config"
)

// SetupRoutes is the single entry point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	SetupPublicRoutes(r, db, cfg)
	SetupUserRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg)
}
