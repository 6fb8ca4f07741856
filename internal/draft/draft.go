// Package draft implements the editable working copy of a seller profile
// used by the edit form: a flat projection with explicit defaults, a
// structural dirty check against the last-saved profile, and client-side
// validation that blocks submission before any network call.
package draft

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
)

// Form is the flat, UI-editable projection of a SellerProfile. Every field
// has a defined zero default, so structural comparison against the
// last-saved snapshot is always well-defined.
type Form struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`

	BusinessName string `json:"businessName" validate:"required"`
	Tagline      string `json:"tagline"`
	Description  string `json:"description"`
	GSTNumber    string `json:"gstNumber"`
	LogoURL      string `json:"logoUrl"`
	BannerURL    string `json:"bannerUrl"`

	Street  string `json:"street"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`

	// The bank fields are an all-or-nothing group: filling any one of the
	// four makes the other three required.
	AccountHolderName string `json:"accountHolderName" validate:"required_with=AccountNumber BankName IFSCCode"`
	AccountNumber     string `json:"accountNumber" validate:"required_with=AccountHolderName BankName IFSCCode"`
	BankName          string `json:"bankName" validate:"required_with=AccountHolderName AccountNumber IFSCCode"`
	IFSCCode          string `json:"ifscCode" validate:"required_with=AccountHolderName AccountNumber BankName"`

	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Website   string `json:"website" validate:"omitempty,url"`

	ProcessingTime      string `json:"processingTime"`
	ReturnPolicy        string `json:"returnPolicy"`
	ShippingPolicy      string `json:"shippingPolicy"`
	AcceptsReturns      bool   `json:"acceptsReturns"`
	AcceptsCustomOrders bool   `json:"acceptsCustomOrders"`
}

// Draft couples the editable form with its current validation errors.
type Draft struct {
	Form   Form
	Errors domain.FieldErrors
}

// New flattens the canonical profile into a fresh draft with no edits and
// no validation errors.
func New(profile *domain.SellerProfile) Draft {
	if profile == nil {
		return Draft{Errors: domain.FieldErrors{}}
	}
	return Draft{
		Form: Form{
			Name:  profile.Name,
			Phone: profile.Phone,
			Email: profile.Email,

			BusinessName: profile.BusinessInfo.BusinessName,
			Tagline:      profile.BusinessInfo.Tagline,
			Description:  profile.BusinessInfo.Description,
			GSTNumber:    profile.BusinessInfo.GSTNumber,
			LogoURL:      profile.BusinessInfo.LogoURL,
			BannerURL:    profile.BusinessInfo.BannerURL,

			Street:  profile.BusinessInfo.Address.Street,
			City:    profile.BusinessInfo.Address.City,
			State:   profile.BusinessInfo.Address.State,
			Pincode: profile.BusinessInfo.Address.Pincode,

			AccountHolderName: profile.BankInfo.AccountHolderName,
			AccountNumber:     profile.BankInfo.AccountNumber,
			BankName:          profile.BankInfo.BankName,
			IFSCCode:          profile.BankInfo.IFSCCode,

			Instagram: profile.SocialLinks.Instagram,
			Facebook:  profile.SocialLinks.Facebook,
			Website:   profile.SocialLinks.Website,

			ProcessingTime:      profile.StoreSettings.ProcessingTime,
			ReturnPolicy:        profile.StoreSettings.ReturnPolicy,
			ShippingPolicy:      profile.StoreSettings.ShippingPolicy,
			AcceptsReturns:      profile.StoreSettings.AcceptsReturns,
			AcceptsCustomOrders: profile.StoreSettings.AcceptsCustomOrders,
		},
		Errors: domain.FieldErrors{},
	}
}

// SetField updates a single form field by its flat name and clears any
// existing validation error for that field.
func (d *Draft) SetField(name string, value any) error {
	set := func(dst *string) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %q expects a string, got %T", name, value)
		}
		*dst = s
		return nil
	}
	setBool := func(dst *bool) error {
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %q expects a bool, got %T", name, value)
		}
		*dst = b
		return nil
	}

	var err error
	switch name {
	case "name":
		err = set(&d.Form.Name)
	case "phone":
		err = set(&d.Form.Phone)
	case "email":
		err = set(&d.Form.Email)
	case "businessName":
		err = set(&d.Form.BusinessName)
	case "tagline":
		err = set(&d.Form.Tagline)
	case "description":
		err = set(&d.Form.Description)
	case "gstNumber":
		err = set(&d.Form.GSTNumber)
	case "logoUrl":
		err = set(&d.Form.LogoURL)
	case "bannerUrl":
		err = set(&d.Form.BannerURL)
	case "street":
		err = set(&d.Form.Street)
	case "city":
		err = set(&d.Form.City)
	case "state":
		err = set(&d.Form.State)
	case "pincode":
		err = set(&d.Form.Pincode)
	case "accountHolderName":
		err = set(&d.Form.AccountHolderName)
	case "accountNumber":
		err = set(&d.Form.AccountNumber)
	case "bankName":
		err = set(&d.Form.BankName)
	case "ifscCode":
		err = set(&d.Form.IFSCCode)
	case "instagram":
		err = set(&d.Form.Instagram)
	case "facebook":
		err = set(&d.Form.Facebook)
	case "website":
		err = set(&d.Form.Website)
	case "processingTime":
		err = set(&d.Form.ProcessingTime)
	case "returnPolicy":
		err = set(&d.Form.ReturnPolicy)
	case "shippingPolicy":
		err = set(&d.Form.ShippingPolicy)
	case "acceptsReturns":
		err = setBool(&d.Form.AcceptsReturns)
	case "acceptsCustomOrders":
		err = setBool(&d.Form.AcceptsCustomOrders)
	default:
		return fmt.Errorf("unknown form field %q", name)
	}
	if err != nil {
		return err
	}

	if d.Errors == nil {
		d.Errors = domain.FieldErrors{}
	}
	delete(d.Errors, name)
	return nil
}

// Dirty reports whether the draft differs structurally from a fresh
// flattening of the given profile.
func (d Draft) Dirty(profile *domain.SellerProfile) bool {
	return !cmp.Equal(d.Form, New(profile).Form)
}

// Reset discards all edits, reinitializing the draft from the canonical
// profile and clearing validation errors.
func (d *Draft) Reset(profile *domain.SellerProfile) {
	*d = New(profile)
}

// Patch converts the full form into a flat profile patch for submission.
func (d Draft) Patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		"name":                d.Form.Name,
		"phone":               d.Form.Phone,
		"email":               d.Form.Email,
		"businessName":        d.Form.BusinessName,
		"tagline":             d.Form.Tagline,
		"description":         d.Form.Description,
		"gstNumber":           d.Form.GSTNumber,
		"logoUrl":             d.Form.LogoURL,
		"bannerUrl":           d.Form.BannerURL,
		"street":              d.Form.Street,
		"city":                d.Form.City,
		"state":               d.Form.State,
		"pincode":             d.Form.Pincode,
		"accountHolderName":   d.Form.AccountHolderName,
		"accountNumber":       d.Form.AccountNumber,
		"bankName":            d.Form.BankName,
		"ifscCode":            d.Form.IFSCCode,
		"instagram":           d.Form.Instagram,
		"facebook":            d.Form.Facebook,
		"website":             d.Form.Website,
		"processingTime":      d.Form.ProcessingTime,
		"returnPolicy":        d.Form.ReturnPolicy,
		"shippingPolicy":      d.Form.ShippingPolicy,
		"acceptsReturns":      d.Form.AcceptsReturns,
		"acceptsCustomOrders": d.Form.AcceptsCustomOrders,
	}
}

// validate is a package-level validator instance; a single instance caches
// struct metadata across calls.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form's flat field names rather than the Go
	// struct field names.
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

func jsonFieldName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	return tag
}

// Validate runs the client-side field checks and records the resulting
// errors on the draft. An empty result means the draft is submittable.
func (d *Draft) Validate() domain.FieldErrors {
	fieldErrors := domain.FieldErrors{}

	if err := validate.Struct(d.Form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fieldErrors[fe.Field()] = messageFor(fe)
			}
		} else {
			fieldErrors["_form"] = err.Error()
		}
	}

	d.Errors = fieldErrors
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_with":
		return "All bank details are required when any one is provided"
	case "email":
		return "Enter a valid email address"
	case "url":
		return "Enter a valid URL"
	default:
		return "Invalid value"
	}
}
