package domain

// ProfilePatch is a flat partial update keyed by form field name. The flat
// shape matches the edit form's draft fields; Nested converts it to the
// document structure for a database merge, ApplyTo mirrors the same merge
// onto an in-memory profile for optimistic local updates.
type ProfilePatch map[string]any

// patchPaths maps flat form field names to their nested document location.
// Fields not listed here live at the top level of the document.
var patchPaths = map[string][]string{
	"businessName":        {"businessInfo", "businessName"},
	"tagline":             {"businessInfo", "tagline"},
	"description":         {"businessInfo", "description"},
	"gstNumber":           {"businessInfo", "gstNumber"},
	"logoUrl":             {"businessInfo", "logoUrl"},
	"bannerUrl":           {"businessInfo", "bannerUrl"},
	"street":              {"businessInfo", "address", "street"},
	"city":                {"businessInfo", "address", "city"},
	"state":               {"businessInfo", "address", "state"},
	"pincode":             {"businessInfo", "address", "pincode"},
	"accountHolderName":   {"bankInfo", "accountHolderName"},
	"accountNumber":       {"bankInfo", "accountNumber"},
	"bankName":            {"bankInfo", "bankName"},
	"ifscCode":            {"bankInfo", "ifscCode"},
	"instagram":           {"socialLinks", "instagram"},
	"facebook":            {"socialLinks", "facebook"},
	"website":             {"socialLinks", "website"},
	"processingTime":      {"storeSettings", "processingTime"},
	"returnPolicy":        {"storeSettings", "returnPolicy"},
	"shippingPolicy":      {"storeSettings", "shippingPolicy"},
	"acceptsReturns":      {"storeSettings", "acceptsReturns"},
	"acceptsCustomOrders": {"storeSettings", "acceptsCustomOrders"},
}

// KnownPatchField reports whether name is an updatable profile field.
func KnownPatchField(name string) bool {
	switch name {
	case "name", "phone", "email":
		return true
	}
	_, ok := patchPaths[name]
	return ok
}

// Nested converts the flat patch into the nested document shape used by
// the persistence layer's merge update. Unknown fields are dropped.
func (p ProfilePatch) Nested() map[string]any {
	doc := make(map[string]any)
	for name, value := range p {
		if !KnownPatchField(name) {
			continue
		}
		path, ok := patchPaths[name]
		if !ok {
			doc[name] = value
			continue
		}
		node := doc
		for _, key := range path[:len(path)-1] {
			child, ok := node[key].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[key] = child
			}
			node = child
		}
		node[path[len(path)-1]] = value
	}
	return doc
}

// ApplyTo merges the patch into the profile in place. This is the local
// optimistic counterpart of the remote merge: after a successful write the
// caller applies the same patch without waiting for a re-fetch.
func (p ProfilePatch) ApplyTo(profile *SellerProfile) {
	for name, value := range p {
		switch name {
		case "name":
			setString(&profile.Name, value)
		case "phone":
			setString(&profile.Phone, value)
		case "email":
			setString(&profile.Email, value)
		case "businessName":
			setString(&profile.BusinessInfo.BusinessName, value)
		case "tagline":
			setString(&profile.BusinessInfo.Tagline, value)
		case "description":
			setString(&profile.BusinessInfo.Description, value)
		case "gstNumber":
			setString(&profile.BusinessInfo.GSTNumber, value)
		case "logoUrl":
			setString(&profile.BusinessInfo.LogoURL, value)
		case "bannerUrl":
			setString(&profile.BusinessInfo.BannerURL, value)
		case "street":
			setString(&profile.BusinessInfo.Address.Street, value)
		case "city":
			setString(&profile.BusinessInfo.Address.City, value)
		case "state":
			setString(&profile.BusinessInfo.Address.State, value)
		case "pincode":
			setString(&profile.BusinessInfo.Address.Pincode, value)
		case "accountHolderName":
			setString(&profile.BankInfo.AccountHolderName, value)
		case "accountNumber":
			setString(&profile.BankInfo.AccountNumber, value)
		case "bankName":
			setString(&profile.BankInfo.BankName, value)
		case "ifscCode":
			setString(&profile.BankInfo.IFSCCode, value)
		case "instagram":
			setString(&profile.SocialLinks.Instagram, value)
		case "facebook":
			setString(&profile.SocialLinks.Facebook, value)
		case "website":
			setString(&profile.SocialLinks.Website, value)
		case "processingTime":
			setString(&profile.StoreSettings.ProcessingTime, value)
		case "returnPolicy":
			setString(&profile.StoreSettings.ReturnPolicy, value)
		case "shippingPolicy":
			setString(&profile.StoreSettings.ShippingPolicy, value)
		case "acceptsReturns":
			setBool(&profile.StoreSettings.AcceptsReturns, value)
		case "acceptsCustomOrders":
			setBool(&profile.StoreSettings.AcceptsCustomOrders, value)
		}
	}
}

func setString(dst *string, value any) {
	if s, ok := value.(string); ok {
		*dst = s
	}
}

func setBool(dst *bool, value any) {
	if b, ok := value.(bool); ok {
		*dst = b
	}
}
