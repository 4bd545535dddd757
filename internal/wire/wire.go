package wire

import (
	"Camellia/internal/api"
	"Camellia/internal/api/config"
	"Camellia/internal/api/handler"
	"Camellia/internal/job"
	"Camellia/internal/pkg/collector"
	"Camellia/internal/pkg/cron"
	"Camellia/internal/pkg/kafka"
	"Camellia/internal/pkg/oauth"
	"Camellia/internal/repository"
	"Camellia/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	authorRepo := repository.NewAuthorRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	taskRepo := repository.NewCollectionTaskRepository(db)
	recordRepo := repository.NewModerationRecordRepository(db)

	adminChecker := service.NewAdminChecker()
	oauthClient := oauth.NewClient()
	fetcher := collector.NewFetcher()

	authService := service.NewAuthService(oauthClient, authorRepo, adminChecker)
	postService := service.NewPostService(postRepo, authorRepo, categoryRepo, tagRepo)
	moderationService := service.NewModerationService(postRepo, recordRepo)
	collectService := service.NewCollectService(fetcher, postRepo, authorRepo, tagRepo, taskRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:    handler.NewAuthHandler(authService),
		PostHandler:    handler.NewPostHandler(postService),
		AdminHandler:   handler.NewAdminHandler(moderationService),
		CollectHandler: handler.NewCollectHandler(collectService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, postRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewTagCountJob(tagRepo),
		job.NewTaskCleanJob(taskRepo),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
