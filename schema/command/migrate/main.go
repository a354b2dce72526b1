package main

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/exchange-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("exchange")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS exchange`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO exchange").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.RefreshToken{},
		&schema.Item{},
		&schema.Request{},
		&schema.Transaction{},
	).Error; err != nil {
		panic(err)
	}

	// approvals are serialized by the item row lock, this index guards the invariant at rest
	if err := db.Model(schema.Transaction{}).Where(fmt.Sprintf("status = '%s'", schema.TransactionInProgress)).
		AddUniqueIndex("transaction_unique_in_progress_item", "item_id").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
