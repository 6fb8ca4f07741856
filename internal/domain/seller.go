package domain

import (
	"context"

	"github.com/go-playground/validator/v10"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// SellerProfile is the canonical seller record. It is owned exclusively by
// the seller, created at onboarding, and mutated only through explicit
// profile-update actions.
type SellerProfile struct {
	ID            *surrealmodels.RecordID       `json:"id,omitempty"`
	UID           string                        `json:"uid" validate:"required"`
	Name          string                        `json:"name" validate:"required"`
	Phone         string                        `json:"phone" validate:"required"`
	Email         string                        `json:"email" validate:"omitempty,email"`
	BusinessInfo  BusinessInfo                  `json:"businessInfo"`
	BankInfo      BankInfo                      `json:"bankInfo"`
	SocialLinks   SocialLinks                   `json:"socialLinks"`
	StoreSettings StoreSettings                 `json:"storeSettings"`
	SellerStats   SellerStats                   `json:"sellerStats"`
	CreatedAt     *surrealmodels.CustomDateTime `json:"createdAt,omitempty"`
	UpdatedAt     *surrealmodels.CustomDateTime `json:"updatedAt,omitempty"`
}

// BusinessInfo describes the seller's storefront.
type BusinessInfo struct {
	BusinessName string  `json:"businessName" validate:"required"`
	Tagline      string  `json:"tagline"`
	Description  string  `json:"description"`
	Address      Address `json:"address"`
	LogoURL      string  `json:"logoUrl"`
	BannerURL    string  `json:"bannerUrl"`
	GSTNumber    string  `json:"gstNumber"`
}

// Address is the seller's business address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// BankInfo holds payout details. The four fields form an all-or-nothing
// group: a profile with a partially filled bank section is invalid.
type BankInfo struct {
	AccountHolderName string `json:"accountHolderName" validate:"required_with=AccountNumber BankName IFSCCode"`
	AccountNumber     string `json:"accountNumber" validate:"required_with=AccountHolderName BankName IFSCCode"`
	BankName          string `json:"bankName" validate:"required_with=AccountHolderName AccountNumber IFSCCode"`
	IFSCCode          string `json:"ifscCode" validate:"required_with=AccountHolderName AccountNumber BankName"`
}

// SocialLinks are optional storefront links.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Website   string `json:"website" validate:"omitempty,url"`
}

// StoreSettings holds fulfilment preferences.
type StoreSettings struct {
	ProcessingTime      string `json:"processingTime"`
	ReturnPolicy        string `json:"returnPolicy"`
	ShippingPolicy      string `json:"shippingPolicy"`
	AcceptsReturns      bool   `json:"acceptsReturns"`
	AcceptsCustomOrders bool   `json:"acceptsCustomOrders"`
}

// SellerStats are aggregate counters denormalized onto the profile.
type SellerStats struct {
	TotalOrders     int     `json:"totalOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalProducts   int     `json:"totalProducts"`
	AverageRating   float64 `json:"averageRating"`
	TotalReviews    int     `json:"totalReviews"`
}

// Validate runs validation checks on the profile using the defined tags.
func (p *SellerProfile) Validate() error {
	return validatorInstance.Struct(p)
}

// SellerRepository defines the contract for seller profile persistence.
// It lives in the domain because it's a requirement OF the domain, not
// of the database implementation.
type SellerRepository interface {
	// FindByUID retrieves a profile by the seller's auth uid.
	// Returns (nil, nil) when no profile exists.
	FindByUID(ctx context.Context, uid string) (*SellerProfile, error)

	// MergePatch applies a partial update to the persisted document.
	// It does not return the updated document.
	MergePatch(ctx context.Context, uid string, patch ProfilePatch) error

	// AggregateStats computes the dashboard counters for a seller.
	AggregateStats(ctx context.Context, uid string) (*DashboardStats, error)
}
