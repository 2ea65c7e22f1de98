// Package database - Handles all interaction with ArangoDB
package database

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/arangodb/go-driver/v2/connection"
	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ash3dwards/cvebump/util"
)

var logger = InitLogger() // setup the logger

// DBConnection is the structure that defined the database engine and collections
type DBConnection struct {
	Collections map[string]arangodb.Collection
	Database    arangodb.Database
}

// Define a struct to hold the index definition
type indexConfig struct {
	Collection string
	IdxName    string
	IdxField   string
	Unique     bool
}

var initDone = false          // has the data been initialized
var dbConnection DBConnection // database connection definition

// InitLogger sets up the Zap Logger to log to the console in a human readable format
func InitLogger() *zap.Logger {
	prodConfig := zap.NewProductionConfig()
	prodConfig.Encoding = "console"
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	logger, _ := prodConfig.Build()
	return logger
}

func dbConnectionConfig(endpoint connection.Endpoint, dbuser string, dbpass string) connection.HttpConfiguration {
	return connection.HttpConfiguration{
		Authentication: connection.NewBasicAuth(dbuser, dbpass),
		Endpoint:       endpoint,
		ContentType:    connection.ApplicationJSON,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, // #nosec G402
			},
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 90 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// InitializeDatabase is the function for connecting to the db engine, creating the database and collections
func InitializeDatabase() DBConnection {
	const initialInterval = 10 * time.Second
	const maxInterval = 2 * time.Minute
	const databaseName = "cvebump"

	var db arangodb.Database
	var collections map[string]arangodb.Collection

	ctx := context.Background()

	if initDone {
		return dbConnection
	}

	False := false
	True := true
	dbhost := util.GetEnvDefault("ARANGO_HOST", "localhost")
	dbport := util.GetEnvDefault("ARANGO_PORT", "8529")
	dbuser := util.GetEnvDefault("ARANGO_USER", "root")
	dbpass := util.GetEnvDefault("ARANGO_PASS", "mypassword")
	dburl := util.GetEnvDefault("ARANGO_URL", "http://"+dbhost+":"+dbport)

	var client arangodb.Client

	//
	// Database connection with backoff retry
	//

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval
	bo.MaxInterval = maxInterval
	bo.MaxElapsedTime = 0 // Set to 0 for indefinite retries

	err := backoff.RetryNotify(func() error {
		fmt.Println("Attempting to connect to ArangoDB")
		endpoint := connection.NewRoundRobinEndpoints([]string{dburl})
		conn := connection.NewHttpConnection(dbConnectionConfig(endpoint, dbuser, dbpass))

		client = arangodb.NewClient(conn)

		versionInfo, err := client.Version(context.Background())
		if err != nil {
			return err
		}

		logger.Sugar().Infof("Database has version '%s' and license '%s'\n", versionInfo.Version, versionInfo.License)
		return nil

	}, bo, func(err error, _ time.Duration) {
		fmt.Printf("Retrying connection to ArangoDB: %v\n", err)
	})

	if err != nil {
		logger.Sugar().Fatalf("Backoff Error %v\n", err)
	}

	//
	// Database creation
	//

	exists := false
	dblist, _ := client.Databases(ctx)

	for _, dbinfo := range dblist {
		if dbinfo.Name() == databaseName {
			exists = true
			break
		}
	}

	if exists {
		var options arangodb.GetDatabaseOptions
		if db, err = client.GetDatabase(ctx, databaseName, &options); err != nil {
			logger.Sugar().Fatalf("Failed to get Database: %v", err)
		}
	} else {
		if db, err = client.CreateDatabase(ctx, databaseName, nil); err != nil {
			logger.Sugar().Fatalf("Failed to create Database: %v", err)
		}
	}

	//
	// Collection creation for document storage
	//

	collections = make(map[string]arangodb.Collection)
	collectionNames := []string{"findings", "reports", "advisories", "packages"}

	for _, collectionName := range collectionNames {
		var col arangodb.Collection

		exists, _ = db.CollectionExists(ctx, collectionName)
		if exists {
			var options arangodb.GetCollectionOptions
			if col, err = db.GetCollection(ctx, collectionName, &options); err != nil {
				logger.Sugar().Fatalf("Failed to use collection: %v", err)
			}
		} else {
			if col, err = db.CreateCollectionV2(ctx, collectionName, nil); err != nil {
				logger.Sugar().Fatalf("Failed to create collection: %v", err)
			}
		}

		collections[collectionName] = col
	}

	//
	// Index creation
	//

	idxList := []indexConfig{
		// Report lookups are by generation time (latest-first)
		{Collection: "reports", IdxName: "report_generated_at", IdxField: "generated_at"},

		// Finding batches are keyed by their report for drill-down queries
		{Collection: "findings", IdxName: "finding_report_key", IdxField: "report_key"},
		{Collection: "findings", IdxName: "finding_cve_id", IdxField: "cve_id"},

		// Advisory lookups by OSV id and by rating for the mirror
		{Collection: "advisories", IdxName: "advisory_id", IdxField: "id", Unique: true},
		{Collection: "advisories", IdxName: "advisory_rating", IdxField: "severity_rating"},
		{Collection: "advisories", IdxName: "advisory_ecosystem", IdxField: "ecosystem"},

		// Package freshness state keyed by PURL
		{Collection: "packages", IdxName: "package_purl", IdxField: "purl", Unique: true},
		{Collection: "packages", IdxName: "package_outdated", IdxField: "outdated"},
	}

	for _, idx := range idxList {
		found := false

		if indexes, err := collections[idx.Collection].Indexes(ctx); err == nil {
			for _, index := range indexes {
				if idx.IdxName == index.Name {
					found = true
					break
				}
			}
		}

		if !found {
			unique := &False
			if idx.Unique {
				unique = &True
			}
			indexOptions := arangodb.CreatePersistentIndexOptions{
				Unique: unique,
				Sparse: &False,
				Name:   idx.IdxName,
			}

			_, _, err = collections[idx.Collection].EnsurePersistentIndex(ctx, []string{idx.IdxField}, &indexOptions)
			if err != nil {
				logger.Sugar().Fatalln("Error creating index:", err)
			} else {
				logger.Sugar().Infof("Created index: %s on %s.%s", idx.IdxName, idx.Collection, idx.IdxField)
			}
		}
	}

	initDone = true

	dbConnection = DBConnection{
		Database:    db,
		Collections: collections,
	}

	logger.Sugar().Infof("Database initialization complete")

	return dbConnection
}
