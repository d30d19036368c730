package constants

// Имена справочников, которые умеет отдавать сервис.
const (
	DictionaryPropertyTypes = "property_types"
	DictionaryLocations     = "locations"
	DictionaryStatuses      = "statuses"
)

// PropertyTypeLabels — display-названия типов объектов.
var PropertyTypeLabels = map[string]string{
	"office":      "Office",
	"retail":      "Retail",
	"industrial":  "Industrial",
	"multifamily": "Multifamily",
	"hospitality": "Hospitality",
	"mixed-use":   "Mixed-Use",
}

// LocationLabels — display-названия штатов, по которым есть предложения.
var LocationLabels = map[string]string{
	"TX": "Texas",
	"CA": "California",
	"NY": "New York",
	"FL": "Florida",
	"IL": "Illinois",
	"GA": "Georgia",
}

// StatusLabels — display-названия статусов сделки.
var StatusLabels = map[string]string{
	"active":         "Active",
	"under-contract": "Under Contract",
	"closing":        "Closing",
	"off-market":     "Off Market",
}
