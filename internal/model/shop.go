package model

// DefaultCurrency is used for every seeded catalog entry.
const DefaultCurrency = "RUB"

// ShopItem is a catalog entry.
type ShopItem struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"image_url"`
	IsActive    bool    `json:"-"`
}

// SeedCatalog returns the catalog inserted into an empty shop.
func SeedCatalog() []ShopItem {
	return []ShopItem{
		{Name: "VIP Status (30 дней)", Description: "Привилегированный статус с особыми возможностями в игре", Price: 299, Currency: DefaultCurrency, Category: "vip", IsActive: true},
		{Name: "Premium Kit", Description: "Эксклюзивный набор предметов для игры", Price: 199, Currency: DefaultCurrency, Category: "items", IsActive: true},
		{Name: "Server Priority", Description: "Приоритетное подключение к серверам", Price: 99, Currency: DefaultCurrency, Category: "access", IsActive: true},
		{Name: "Custom Badge", Description: "Персонализированная плашка в игре", Price: 149, Currency: DefaultCurrency, Category: "cosmetic", IsActive: true},
		{Name: "Event Access", Description: "Доступ ко всем эвентам на месяц", Price: 249, Currency: DefaultCurrency, Category: "events", IsActive: true},
	}
}
