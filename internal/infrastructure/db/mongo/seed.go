package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
)

// Seed loads the starter accounts and lubricant catalog. It upserts by id,
// so running it against an already-seeded database is harmless.
func Seed(ctx context.Context, db *mongo.Database) error {
	if err := seedUsers(ctx, db); err != nil {
		return err
	}
	if err := seedCatalog(ctx, db); err != nil {
		return err
	}
	return nil
}

type seedAccount struct {
	id       string
	email    string
	password string
	name     string
	role     string
}

var seedAccounts = []seedAccount{
	{id: "1", email: "admin@lubes.com", password: "admin123", name: "Admin User", role: domain.RoleAdmin},
	{id: "2", email: "customer@lubes.com", password: "customer123", name: "John Doe", role: domain.RoleCustomer},
}

func seedUsers(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(userCollection)
	now := time.Now().UTC().Unix()

	for _, acc := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		doc := mongoUser{
			ID:           acc.id,
			Email:        acc.email,
			Name:         acc.name,
			PasswordHash: string(hash),
			Role:         acc.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := upsert(ctx, coll, doc.ID, doc); err != nil {
			return fmt.Errorf("seed user %s: %w", acc.email, err)
		}
	}
	return nil
}

var seedProducts = []domain.Product{
	{ID: "1", Name: "Premium Engine Oil 5W-30", Description: "High-performance synthetic engine oil for modern vehicles", Price: 45.99, Category: "Engine Oil", Image: "https://images.pexels.com/photos/13065690/pexels-photo-13065690.jpeg?auto=compress&cs=tinysrgb&w=400", Status: domain.StatusActive, Stock: 150},
	{ID: "2", Name: "Synthetic Motor Oil 10W-40", Description: "Advanced protection for high-mileage engines", Price: 52.99, Category: "Engine Oil", Image: "https://images.pexels.com/photos/5766/car-industry-vehicle-interior.jpg?auto=compress&cs=tinysrgb&w=400", Status: domain.StatusActive, Stock: 120},
	{ID: "3", Name: "Transmission Fluid ATF", Description: "Superior automatic transmission fluid for smooth shifting", Price: 38.99, Category: "Transmission Fluid", Image: "https://images.pexels.com/photos/279949/pexels-photo-279949.jpeg?auto=compress&cs=tinysrgb&w=400", Status: domain.StatusActive, Stock: 80},
	{ID: "4", Name: "Hydraulic Oil ISO 68", Description: "Industrial-grade hydraulic oil for heavy machinery", Price: 65.99, Category: "Hydraulic Oil", Image: "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg?auto=compress&cs=tinysrgb&w=400", Status: domain.StatusActive, Stock: 95},
	{ID: "5", Name: "Brake Fluid DOT 4", Description: "High-temperature brake fluid for optimal braking performance", Price: 28.99, Category: "Brake Fluid", Image: "https://images.pexels.com/photos/13065691/pexels-photo-13065691.jpeg?auto=compress&cs=tinysrgb&w=400", Status: domain.StatusActive, Stock: 200},
	{ID: "6", Name: "Gear Oil 75W-90", Description: "Heavy-duty gear oil for manual transmissions and differentials", Price: 42.99, Category: "Gear Oil", Image: "https://images.pexels.com/photos/190574/pexels-photo-190574.jpeg?auto=compress&cs=tinysrgb&w=400", Status: domain.StatusActive, Stock: 110},
}

var seedCategories = []domain.Category{
	{ID: "1", Name: "Engine Oil", Description: "Motor oils for various engine types", IsActive: true},
	{ID: "2", Name: "Transmission Fluid", Description: "Fluids for automatic and manual transmissions", IsActive: true},
	{ID: "3", Name: "Hydraulic Oil", Description: "Industrial hydraulic oils", IsActive: true},
	{ID: "4", Name: "Brake Fluid", Description: "Brake fluids for automotive applications", IsActive: true},
	{ID: "5", Name: "Gear Oil", Description: "Lubricants for gears and differentials", IsActive: true},
	{ID: "6", Name: "Coolant", Description: "Engine coolants and antifreeze", IsActive: false},
}

var seedRoles = []domain.RoleRecord{
	{ID: "1", Name: domain.RoleAdmin, Description: "Full system access and management", Status: domain.StatusActive},
	{ID: "2", Name: domain.RoleCustomer, Description: "Can browse products and place orders", Status: domain.StatusActive},
	{ID: "3", Name: "manager", Description: "Can manage inventory and orders", Status: domain.StatusInactive},
}

func seedCatalog(ctx context.Context, db *mongo.Database) error {
	for _, p := range seedProducts {
		if err := upsert(ctx, db.Collection(productCollection), p.ID, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}
	for _, c := range seedCategories {
		if err := upsert(ctx, db.Collection(categoryCollection), c.ID, c); err != nil {
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}
	}
	for _, r := range seedRoles {
		if err := upsert(ctx, db.Collection(roleCollection), r.ID, r); err != nil {
			return fmt.Errorf("seed role %s: %w", r.ID, err)
		}
	}
	return nil
}

func upsert(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	opts := options.Replace().SetUpsert(true)
	_, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts)
	return err
}
