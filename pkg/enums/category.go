package enums

import "fmt"

// ProductCategory identifies the catalog section a product belongs to.
type ProductCategory string

const (
	ProductCategoryTShirts    ProductCategory = "T_SHIRTS"
	ProductCategoryShirts     ProductCategory = "SHIRTS"
	ProductCategoryTrousers   ProductCategory = "TROUSERS"
	ProductCategoryShorts     ProductCategory = "SHORTS"
	ProductCategoryHoodies    ProductCategory = "HOODIES"
	ProductCategoryJackets    ProductCategory = "JACKETS"
	ProductCategorySneakers   ProductCategory = "SNEAKERS"
	ProductCategoryBoots      ProductCategory = "BOOTS"
	ProductCategorySandals    ProductCategory = "SANDALS"
	ProductCategoryTops       ProductCategory = "TOPS"
	ProductCategoryDresses    ProductCategory = "DRESSES"
	ProductCategorySuits      ProductCategory = "SUITS"
	ProductCategoryCoats      ProductCategory = "COATS"
	ProductCategorySocks      ProductCategory = "SOCKS"
	ProductCategoryInnerwears ProductCategory = "INNERWEARS"
	ProductCategoryHats       ProductCategory = "HATS"
	ProductCategorySunglasses ProductCategory = "SUNGLASSES"
	ProductCategoryOthers     ProductCategory = "OTHERS"
)

var validProductCategories = []ProductCategory{
	ProductCategoryTShirts,
	ProductCategoryShirts,
	ProductCategoryTrousers,
	ProductCategoryShorts,
	ProductCategoryHoodies,
	ProductCategoryJackets,
	ProductCategorySneakers,
	ProductCategoryBoots,
	ProductCategorySandals,
	ProductCategoryTops,
	ProductCategoryDresses,
	ProductCategorySuits,
	ProductCategoryCoats,
	ProductCategorySocks,
	ProductCategoryInnerwears,
	ProductCategoryHats,
	ProductCategorySunglasses,
	ProductCategoryOthers,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the category is recognized.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts a raw string into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// ProductCategories returns every recognized category, in declaration order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}
