package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pokemon represents a single pokedex entry. Abilities and weaknesses
// are stored as delimited strings, matching the wire format.
type Pokemon struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IDPokedex  int       `gorm:"column:id_pokedex;not null" json:"id_pokedex"`
	Name       string    `gorm:"not null" json:"name"`
	Category   string    `json:"category"`
	Abillities string    `json:"abillities"`
	Gender     string    `json:"gender"`
	Type       string    `gorm:"column:type" json:"type"`
	Weaknesses string    `json:"weaknesses"`
	Height     float64   `json:"height"`
	Weight     float64   `json:"weight"`
}

// TableName overrides the table name
func (Pokemon) TableName() string {
	return "pokemon"
}

// BeforeCreate hook to generate UUID before creating a new pokemon
func (p *Pokemon) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Stats holds the battle statistics for one pokemon. One row per
// pokemon by application convention; the schema only declares the
// foreign key.
type Stats struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PokemonID      uuid.UUID `gorm:"type:uuid;not null;index" json:"pokemon_id"`
	Attack         int       `json:"attack"`
	Defense        int       `json:"defense"`
	HP             int       `gorm:"column:hp" json:"hp"`
	SpecialAttack  int       `json:"special_attack"`
	SpecialDefense int       `json:"special_defense"`
	Speed          int       `json:"speed"`
}

// TableName overrides the table name
func (Stats) TableName() string {
	return "stats"
}

// BeforeCreate hook to generate UUID before creating a new stats row
func (s *Stats) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
