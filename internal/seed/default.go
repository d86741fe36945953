package seed

import "github.com/roach88/dashview/internal/model"

// Default returns the built-in demo collection: ten pharmacies, three of them
// in Cairo. A fresh slice is returned on every call.
func Default() []model.Record {
	return []model.Record{
		{ID: 1, Name: "Light Pharmacy", City: "Cairo", Latitude: "30.0444", Longitude: "31.2357", LicenseNumber: "PH123456", Sells: 1245, Buys: 843},
		{ID: 2, Name: "Healing Pharmacy", City: "Giza", Latitude: "29.9870", Longitude: "31.2118", LicenseNumber: "PH654321", Sells: 987, Buys: 621},
		{ID: 3, Name: "Hope Pharmacy", City: "Alexandria", Latitude: "31.2001", Longitude: "29.9187", LicenseNumber: "PH789012", Sells: 1562, Buys: 932},
		{ID: 4, Name: "Life Pharmacy", City: "Cairo", Latitude: "30.0626", Longitude: "31.2497", LicenseNumber: "PH345678", Sells: 843, Buys: 512},
		{ID: 5, Name: "Mercy Pharmacy", City: "Mansoura", Latitude: "31.0409", Longitude: "31.3785", LicenseNumber: "PH901234", Sells: 721, Buys: 498},
		{ID: 6, Name: "Sunshine Pharmacy", City: "Luxor", Latitude: "25.6872", Longitude: "32.6396", LicenseNumber: "PH567890", Sells: 1100, Buys: 750},
		{ID: 7, Name: "Green Pharmacy", City: "Aswan", Latitude: "24.0889", Longitude: "32.8998", LicenseNumber: "PH678901", Sells: 920, Buys: 680},
		{ID: 8, Name: "Blue Pharmacy", City: "Alexandria", Latitude: "31.2005", Longitude: "29.9189", LicenseNumber: "PH789123", Sells: 1350, Buys: 890},
		{ID: 9, Name: "Red Pharmacy", City: "Giza", Latitude: "29.9875", Longitude: "31.2120", LicenseNumber: "PH891234", Sells: 1050, Buys: 720},
		{ID: 10, Name: "Gold Pharmacy", City: "Cairo", Latitude: "30.0448", Longitude: "31.2360", LicenseNumber: "PH912345", Sells: 1500, Buys: 950},
	}
}

// DefaultOwner returns the owner profile that accompanies Default.
func DefaultOwner() Owner {
	return Owner{
		ID:                 1,
		Email:              "admin@example.com",
		Phone:              "+201234567890",
		CreatedAt:          "2023-01-01",
		NumberOfPharmacies: 5,
	}
}
