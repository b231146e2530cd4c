package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/phamthangph13/Tech-Lap-Back-End/controllers"
	"github.com/phamthangph13/Tech-Lap-Back-End/initializers"
	"github.com/phamthangph13/Tech-Lap-Back-End/middlewares"
	"github.com/phamthangph13/Tech-Lap-Back-End/routes"
	"github.com/phamthangph13/Tech-Lap-Back-End/services"
	"github.com/phamthangph13/Tech-Lap-Back-End/storage"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	initializers.LoadEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := initializers.ConnectToDB(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	blobs, err := newBlobStore(ctx, db)
	if err != nil {
		log.Fatalf("Unable to initialize file storage: %v", err)
	}

	server := gin.Default()
	server.Use(middlewares.RequestID())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	productController := controllers.NewProductController(db, blobs)
	categoryController := controllers.NewCategoryController(db)
	searchController := controllers.NewSearchController(db)
	orderController := controllers.NewOrderController(services.NewOrderService(db))

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, productController)
	routes.CategoryRoutes(server, categoryController)
	routes.SearchRoutes(server, searchController)
	routes.OrderRoutes(server, orderController)

	if err := server.Run(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func newBlobStore(ctx context.Context, db *mongo.Database) (storage.BlobStore, error) {
	if os.Getenv("STORAGE_BACKEND") == "s3" {
		return storage.NewS3Store(ctx, os.Getenv("S3_BUCKET"))
	}
	return storage.NewGridFSStore(db)
}
