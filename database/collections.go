package database

import "go.mongodb.org/mongo-driver/mongo"

// Collection names as constants to prevent typos
const (
	UsersCollection          = "users"
	SessionsCollection       = "sessions"
	PlansCollection          = "plans"
	ShopsCollection          = "shops"
	CoverageAreasCollection  = "coverage_areas"
	BannersCollection        = "banners"
	FAQsCollection           = "faqs"
	PaymentMethodsCollection = "payment_methods"
	AccessoriesCollection    = "accessories"
	SettingsCollection       = "settings"
	AboutCollection          = "about"
)

// Collections provides typed access to all collections
type Collections struct{}

// NewCollections creates a new collections instance
func NewCollections() *Collections {
	return &Collections{}
}

func (c *Collections) Users() *mongo.Collection {
	return GetCollection(UsersCollection)
}

func (c *Collections) Sessions() *mongo.Collection {
	return GetCollection(SessionsCollection)
}

func (c *Collections) Plans() *mongo.Collection {
	return GetCollection(PlansCollection)
}

func (c *Collections) Shops() *mongo.Collection {
	return GetCollection(ShopsCollection)
}

func (c *Collections) CoverageAreas() *mongo.Collection {
	return GetCollection(CoverageAreasCollection)
}

func (c *Collections) Banners() *mongo.Collection {
	return GetCollection(BannersCollection)
}

func (c *Collections) FAQs() *mongo.Collection {
	return GetCollection(FAQsCollection)
}

func (c *Collections) PaymentMethods() *mongo.Collection {
	return GetCollection(PaymentMethodsCollection)
}

func (c *Collections) Accessories() *mongo.Collection {
	return GetCollection(AccessoriesCollection)
}

func (c *Collections) Settings() *mongo.Collection {
	return GetCollection(SettingsCollection)
}

func (c *Collections) About() *mongo.Collection {
	return GetCollection(AboutCollection)
}
