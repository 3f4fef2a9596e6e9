package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Zaak represents a case record in the case-management backend.
// A case is identified by its (bronorganisatie, identificatie) pair and
// carries a backend URL that other resources refer to.
type Zaak struct {
	URL                          string     `json:"url"`
	Identificatie                string     `json:"identificatie"`
	Bronorganisatie              string     `json:"bronorganisatie"`
	Zaaktype                     Zaaktype   `json:"zaaktype"`
	Omschrijving                 string     `json:"omschrijving"`
	Toelichting                  string     `json:"toelichting"`
	Registratiedatum             string     `json:"registratiedatum"`
	Startdatum                   string     `json:"startdatum"`
	Einddatum                    *string    `json:"einddatum,omitempty"`
	EinddatumGepland             *string    `json:"einddatumGepland,omitempty"`
	UiterlijkeEinddatumAfdoening *string    `json:"uiterlijkeEinddatumAfdoening,omitempty"`
	Vertrouwelijkheidaanduiding  string     `json:"vertrouwelijkheidaanduiding"`
	Deadline                     string     `json:"deadline"`
	DeadlineProgress             float64    `json:"deadlineProgress"`
	Resultaat                    *Resultaat `json:"resultaat,omitempty"`
	Status                       *Status    `json:"status,omitempty"`
	Zaakgeometrie                *Geometry  `json:"zaakgeometrie,omitempty"`
}

// Validate checks if the case data is logically valid.
func (z *Zaak) Validate() error {
	if z.Bronorganisatie == "" {
		return fmt.Errorf("zaak bronorganisatie cannot be empty")
	}
	if z.Identificatie == "" {
		return fmt.Errorf("zaak identificatie cannot be empty")
	}
	return nil
}

// Key returns the (bronorganisatie, identificatie) pair as a single
// path-style identifier, the way case URLs address a case.
func (z *Zaak) Key() string {
	return z.Bronorganisatie + "/" + z.Identificatie
}

// Zaaktype describes the case type a case was created from.
type Zaaktype struct {
	URL          string `json:"url"`
	Catalogus    string `json:"catalogus"`
	Omschrijving string `json:"omschrijving"`
	Versiedatum  string `json:"versiedatum"`
}

// Resultaattype describes a possible case result.
type Resultaattype struct {
	URL          string `json:"url"`
	Omschrijving string `json:"omschrijving"`
}

// Resultaat is the recorded result of a closed case.
type Resultaat struct {
	URL          string        `json:"url"`
	Resultaattype Resultaattype `json:"resultaattype"`
	Toelichting  string        `json:"toelichting"`
}

// Statustype describes a status a case can be in.
type Statustype struct {
	URL                  string `json:"url"`
	Omschrijving         string `json:"omschrijving"`
	OmschrijvingGeneriek string `json:"omschrijvingGeneriek"`
	Statustekst          string `json:"statustekst"`
	Volgnummer           int    `json:"volgnummer"`
	IsEindstatus         bool   `json:"isEindstatus"`
}

// Status is the current status of a case.
type Status struct {
	URL               string     `json:"url"`
	DatumStatusGezet  time.Time  `json:"datumStatusGezet"`
	Statustoelichting string     `json:"statustoelichting"`
	Statustype        Statustype `json:"statustype"`
}

// Geometry is a GeoJSON geometry attached to a case or object. The
// nesting of Coordinates depends on Type, so it stays raw.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates,omitempty"`
	Geometries  []Geometry      `json:"geometries,omitempty"`
}

// Document is a document attached to a case.
type Document struct {
	URL            string `json:"url"`
	Beschrijving   string `json:"beschrijving"`
	Bestandsnaam   string `json:"bestandsnaam"`
	Bestandsomvang int64  `json:"bestandsomvang,omitempty"`
	ReadURL        string `json:"readUrl"`
	Versie         int    `json:"versie,omitempty"`
}

// EigenschapWaarde is the value of a case-type-defined property on a case.
type EigenschapWaarde struct {
	URL        string     `json:"url"`
	Naam       string     `json:"naam"`
	Waarde     string     `json:"waarde"`
	Eigenschap Eigenschap `json:"eigenschap"`
}

// Eigenschap is a case-type-defined custom property.
type Eigenschap struct {
	URL          string                 `json:"url"`
	Naam         string                 `json:"naam"`
	Toelichting  string                 `json:"toelichting,omitempty"`
	Specificatie EigenschapSpecificatie `json:"specificatie"`
}

// EigenschapSpecificatie constrains the values a property may take.
type EigenschapSpecificatie struct {
	Formaat            string   `json:"formaat"` // "tekst", "getal", "datum", "datum_tijd"
	Lengte             string   `json:"lengte,omitempty"`
	Waardenverzameling []string `json:"waardenverzameling,omitempty"`
}

// NieuweEigenschap is the payload for creating a property value on a case.
type NieuweEigenschap struct {
	Zaak   string `json:"zaak"`
	Naam   string `json:"naam"`
	Waarde string `json:"waarde"`
}

// Betrokkene is a role (involved party) on a case.
type Betrokkene struct {
	URL                     string         `json:"url"`
	BetrokkeneType          string         `json:"betrokkeneType"`
	Betrokkene              string         `json:"betrokkene,omitempty"`
	BetrokkeneIdentificatie map[string]any `json:"betrokkeneIdentificatie,omitempty"`
	Roltype                 string         `json:"roltype"`
	Omschrijving            string         `json:"omschrijving"`
	OmschrijvingGeneriek    string         `json:"omschrijvingGeneriek,omitempty"`
}

// RelatedCase is a case related to another case.
type RelatedCase struct {
	AardRelatie string `json:"aardRelatie"`
	Zaak        Zaak   `json:"zaak"`
}
