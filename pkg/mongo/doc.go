// Package mongo bootstraps the MongoDB client the billing backend's
// session and user collections live on.
//
// Configuration is environment-driven, connection setup retries through
// transient failures (managed MongoDB platforms drop connections during
// maintenance windows), and the healthcheck plugs straight into the HTTP
// server's readiness probe.
//
// # Usage
//
//	import (
//		"context"
//		"github.com/dmitrymomot/invoicekit/pkg/mongo"
//	)
//
//	func main() {
//		var cfg mongo.Config // MONGODB_URL etc.
//		config.MustLoad(&cfg)
//
//		db, err := mongo.NewWithDatabase(context.Background(), cfg, "billing")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer db.Client().Disconnect(context.Background())
//
//		store := mongostore.New(db)
//
//		// Wire health check
//		health := mongo.Healthcheck(db.Client())
//	}
//
// # Error Handling
//
// Connection failures surface as ErrFailedToConnectToMongo after the
// configured retry budget is exhausted; probe failures as
// ErrHealthcheckFailed. Both match with errors.Is().
//
// # See Also
//
// Documentation for the official driver: https://pkg.go.dev/go.mongodb.org/mongo-driver.
package mongo
