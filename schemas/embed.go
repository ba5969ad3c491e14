// Package schemas carries the JSON Schema definitions for the reference data
// files the engine loads at startup.
package schemas

import _ "embed"

// SkillTaxonomy is the schema that skill taxonomy files must conform to.
//
//go:embed skill_taxonomy.schema.json
var SkillTaxonomy string

// SectorVocabulary is the schema that sector vocabulary files must conform to.
//
//go:embed sector_vocabulary.schema.json
var SectorVocabulary string
