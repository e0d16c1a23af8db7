package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id                   BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name                 TEXT NOT NULL,
//     brand                TEXT,
//     official_category    TEXT,
//     price                NUMERIC,
//     tags                 JSONB,
//     featured_ingredients JSONB,
//     url                  TEXT,
//     image_url            TEXT,
//     created_at           TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID                  uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                string                      `gorm:"column:name;type:text;not null" json:"name"`
	Brand               string                      `gorm:"column:brand;type:text" json:"brand"`
	OfficialCategory    string                      `gorm:"column:official_category;type:text" json:"official_category"`
	Price               float64                     `gorm:"column:price;type:numeric" json:"price"`
	Tags                datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb" json:"tags"`
	FeaturedIngredients datatypes.JSONSlice[string] `gorm:"column:featured_ingredients;type:jsonb" json:"featured_ingredients"`
	URL                 string                      `gorm:"column:url;type:text" json:"url"`
	ImageURL            string                      `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt           time.Time                   `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

// AllowedOfficialCategories is the catalog ingestion whitelist. Products
// outside these categories are rejected at the admin boundary, not by the
// scoring engine.
var AllowedOfficialCategories = map[string]bool{
	"Toner": true, "Serum": true, "Essence": true, "Ampoule": true,
	"Cream": true, "Lotion": true, "Gel": true, "Balm": true,
	"Sunscreen": true, "Cleanser": true, "Oil Cleanser": true,
	"Toner Pads": true, "Mask": true, "Sheet Mask": true,
	"Moisturizer": true, "Emulsion": true, "Cleansing Foam": true,
	"Cleansing Gel": true, "Cleansing Oil": true,
}
