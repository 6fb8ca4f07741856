package draft

import (
	"testing"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *domain.SellerProfile {
	return &domain.SellerProfile{
		UID:   "seller123",
		Name:  "Asha",
		Phone: "9876543210",
		Email: "asha@example.com",
		BusinessInfo: domain.BusinessInfo{
			BusinessName: "Asha Crafts",
			Tagline:      "Handmade with love",
			Address: domain.Address{
				City:    "Pune",
				State:   "Maharashtra",
				Pincode: "411001",
			},
		},
		StoreSettings: domain.StoreSettings{
			ProcessingTime: "3-5 days",
			AcceptsReturns: true,
		},
	}
}

func TestNew_FlattensProfile(t *testing.T) {
	d := New(sampleProfile())

	assert.Equal(t, "Asha", d.Form.Name)
	assert.Equal(t, "Asha Crafts", d.Form.BusinessName)
	assert.Equal(t, "Pune", d.Form.City)
	assert.Equal(t, "3-5 days", d.Form.ProcessingTime)
	assert.True(t, d.Form.AcceptsReturns)
	assert.Empty(t, d.Errors)
}

func TestDirty(t *testing.T) {
	profile := sampleProfile()

	t.Run("fresh draft is clean", func(t *testing.T) {
		d := New(profile)
		assert.False(t, d.Dirty(profile))
	})

	t.Run("edit makes it dirty", func(t *testing.T) {
		d := New(profile)
		require.NoError(t, d.SetField("phone", "9999999999"))
		assert.True(t, d.Dirty(profile))
	})

	t.Run("reset makes it clean again", func(t *testing.T) {
		d := New(profile)
		require.NoError(t, d.SetField("tagline", "changed"))
		d.Errors["tagline"] = "some stale error"

		d.Reset(profile)
		assert.False(t, d.Dirty(profile))
		assert.Empty(t, d.Errors)
	})

	t.Run("nil profile draft is clean against nil", func(t *testing.T) {
		d := New(nil)
		assert.False(t, d.Dirty(nil))
	})
}

func TestSetField(t *testing.T) {
	d := New(sampleProfile())

	t.Run("clears the field's validation error", func(t *testing.T) {
		d.Errors["name"] = "This field is required"
		require.NoError(t, d.SetField("name", "Asha K"))
		_, exists := d.Errors["name"]
		assert.False(t, exists)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		err := d.SetField("nonsense", "value")
		assert.Error(t, err)
	})

	t.Run("rejects wrong types", func(t *testing.T) {
		err := d.SetField("acceptsReturns", "yes")
		assert.Error(t, err)
	})

	t.Run("sets bool fields", func(t *testing.T) {
		require.NoError(t, d.SetField("acceptsCustomOrders", true))
		assert.True(t, d.Form.AcceptsCustomOrders)
	})
}

func TestValidate_RequiredFields(t *testing.T) {
	d := New(nil) // everything empty

	fieldErrors := d.Validate()

	for _, field := range []string{"name", "phone", "businessName", "city", "state", "pincode"} {
		assert.Contains(t, fieldErrors, field)
	}
	assert.True(t, fieldErrors.HasErrors())
	assert.Equal(t, fieldErrors, d.Errors)
}

func TestValidate_BankGroup(t *testing.T) {
	bankFields := []string{"accountHolderName", "accountNumber", "bankName", "ifscCode"}
	values := map[string]string{
		"accountHolderName": "Asha K",
		"accountNumber":     "123456789",
		"bankName":          "State Bank",
		"ifscCode":          "SBIN0001234",
	}

	t.Run("no bank fields filled is valid", func(t *testing.T) {
		d := New(sampleProfile())
		fieldErrors := d.Validate()
		for _, field := range bankFields {
			assert.NotContains(t, fieldErrors, field)
		}
	})

	t.Run("all bank fields filled is valid", func(t *testing.T) {
		d := New(sampleProfile())
		for _, field := range bankFields {
			require.NoError(t, d.SetField(field, values[field]))
		}
		fieldErrors := d.Validate()
		for _, field := range bankFields {
			assert.NotContains(t, fieldErrors, field)
		}
	})

	// Any partial fill must flag every empty member of the group.
	for filled := 1; filled <= 3; filled++ {
		t.Run(partialName(filled), func(t *testing.T) {
			d := New(sampleProfile())
			for i := 0; i < filled; i++ {
				require.NoError(t, d.SetField(bankFields[i], values[bankFields[i]]))
			}

			fieldErrors := d.Validate()
			for i, field := range bankFields {
				if i < filled {
					assert.NotContains(t, fieldErrors, field)
				} else {
					assert.Contains(t, fieldErrors, field)
				}
			}
		})
	}
}

func partialName(filled int) string {
	switch filled {
	case 1:
		return "one bank field filled flags the other three"
	case 2:
		return "two bank fields filled flag the other two"
	default:
		return "three bank fields filled flag the last one"
	}
}

func TestPatch_CoversEveryFormField(t *testing.T) {
	d := New(sampleProfile())
	patch := d.Patch()

	assert.Equal(t, "Asha", patch["name"])
	assert.Equal(t, "Asha Crafts", patch["businessName"])
	assert.Equal(t, "Pune", patch["city"])
	assert.Equal(t, true, patch["acceptsReturns"])

	for name := range patch {
		assert.True(t, domain.KnownPatchField(name), "patch field %q must be a known profile field", name)
	}
}
