package api

import (
	"context"
	"fmt"
	"github.com/alex-pricope/live-event-voting/api/controllers"
	"github.com/alex-pricope/live-event-voting/api/transport"
	"github.com/alex-pricope/live-event-voting/logging"
	"github.com/alex-pricope/live-event-voting/storage"
	"github.com/alex-pricope/live-event-voting/voting"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"os"
	"path/filepath"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	local := os.Getenv("APP_ENV") == "local"

	// Storage: JSON files on disk locally, DynamoDB everywhere else
	var voteStorage storage.VoteDocumentStorage
	var prizeStorage storage.PrizeListStorage
	if local {
		voteStorage = &storage.FileVoteStorage{Dir: filepath.Join(s.config.DataDir, "votes")}
		prizeStorage = &storage.FilePrizeListStorage{Dir: filepath.Join(s.config.DataDir, "wheel")}
	} else {
		cfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			logging.Log.Errorf("failed to load AWS config: %v", err)
			panic("failed to load AWS config")
		}

		dynamoClient := dynamodb.NewFromConfig(cfg)
		voteStorage = &storage.DynamoVoteStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNameVotes,
		}
		prizeStorage = &storage.DynamoPrizeListStorage{
			Client:    dynamoClient,
			TableName: s.config.TableNamePrizeLists,
		}
	}

	ledger := voting.NewLedger(voteStorage)

	//Register controllers
	voteController := controllers.NewVoteController(ledger)
	voteController.RegisterRoutes(r)
	wheelController := controllers.NewWheelController(prizeStorage)
	wheelController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if local {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// startLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// startLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
