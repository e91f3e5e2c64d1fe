package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maclaude/learning-node-js-graphql-api/internal/auth"
	"github.com/maclaude/learning-node-js-graphql-api/internal/config"
	"github.com/maclaude/learning-node-js-graphql-api/internal/graph"
	"github.com/maclaude/learning-node-js-graphql-api/internal/handlers"
	"github.com/maclaude/learning-node-js-graphql-api/internal/images"
	"github.com/maclaude/learning-node-js-graphql-api/internal/password"
	"github.com/maclaude/learning-node-js-graphql-api/internal/repo"
	"github.com/maclaude/learning-node-js-graphql-api/internal/service"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *mongo.Database) error {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	userRepo := repo.NewMongoUserRepo(db)
	postRepo := repo.NewMongoPostRepo(db)

	idxCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := userRepo.EnsureIndexes(idxCtx); err != nil {
		log.Printf("ensure indexes: %v", err)
	}

	imgStore, err := images.NewStore(cfg.Upload.ImagesDir)
	if err != nil {
		return err
	}

	hasher := password.NewBcryptHasher(password.DefaultCost)
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Duration())

	userSvc := service.NewUserService(userRepo, hasher, tokens)
	postSvc := service.NewPostService(postRepo, userRepo, imgStore)

	schema, err := graph.NewResolver(userSvc, postSvc, userRepo, postRepo).Schema()
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}
	gql := graph.NewHandler(schema)

	// Token decode is best-effort: requests proceed either way and resolvers
	// act on the annotated identity.
	annotated := r.Group("", auth.Annotate(tokens))
	annotated.POST("/graphql", gql.Handle)
	annotated.GET("/graphql", gql.Handle)

	imgHandler := handlers.NewImageHandler(imgStore)
	annotated.PUT("/post-image", imgHandler.Upload)

	r.Static("/images", imgStore.Dir())

	return nil
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}
