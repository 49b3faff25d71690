package catalog

import (
	"github.com/spf13/viper"
)

// LoadCategories reads the category enumeration from a JSON file of the form
//
//	{"categories": ["Electronics", "Books", ...]}
//
// A missing or unreadable file yields an empty enumeration rather than an
// error; with nothing to select from, every add or edit attempt fails with
// MissingCategory.
func LoadCategories(path string) []string {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil
	}
	return v.GetStringSlice("categories")
}
