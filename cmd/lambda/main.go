package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/overhoor-lambda/internal/config"
	"github.com/saulo-duarte/overhoor-lambda/internal/container"
	"github.com/saulo-duarte/overhoor-lambda/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	c, err := container.New(context.Background())
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to initialize lambda")
	}
	chiLambda = chiadapter.New(router.New(c.RouterConfig()))
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
