package config

import (
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// App bundles the connections and runtime pieces created at startup
type App struct {
	Config     *Config
	Router     *gin.Engine
	Melody     *melody.Melody
	Cron       *cron.Cron
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}

func InitApp(cfg *Config) (*App, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AllowOrigins = cfg.ClientOrigins
	configCors.AllowCredentials = true
	configCors.AddAllowHeaders("X-Request-ID")
	configCors.AddExposeHeaders("X-Request-ID")
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	app := &App{
		Config: cfg,
		Router: router,
		Melody: melody.New(),
		Cron:   cron.New(),
	}
	if err := initComponents(app); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %v", err)
	}
	return app, nil
}

func initComponents(app *App) error {
	var err error
	if app.DB, err = ConnectDB(app.Config); err != nil {
		return err
	}
	if app.Redis, err = ConnectRedis(app.Config); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}
	if app.Cloudinary, err = ConnectCloudinary(app.Config); err != nil {
		return fmt.Errorf("failed to configure Cloudinary: %v", err)
	}

	log.Println("All components initialized successfully")
	return nil
}
