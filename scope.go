package findash

// Scope is the subset of the portfolio a query targets: the whole portfolio,
// one category, or one asset. The zero value is the global scope.
type Scope struct {
	Category Category // set for a category scope
	AssetID  string   // set for a single-asset scope
}

// Global is the whole-portfolio scope.
var Global = Scope{}

// ByCategory returns a scope restricted to one category.
func ByCategory(c Category) Scope { return Scope{Category: c} }

// ByAsset returns a scope restricted to a single asset.
func ByAsset(id string) Scope { return Scope{AssetID: id} }

// IsGlobal reports whether the scope covers the whole portfolio.
func (s Scope) IsGlobal() bool { return s.Category == "" && s.AssetID == "" }

// Matches reports whether the asset belongs to the scope.
func (s Scope) Matches(a Asset) bool {
	if s.AssetID != "" {
		return a.ID == s.AssetID
	}
	if s.Category != "" {
		return a.Category == s.Category
	}
	return true
}

// String returns a human label for the scope.
func (s Scope) String() string {
	switch {
	case s.AssetID != "":
		return "asset " + s.AssetID
	case s.Category != "":
		return string(s.Category)
	default:
		return "portfolio"
	}
}
