// Package registry holds the immutable heuristic data the whole pipeline
// runs on: entity extraction patterns, weighted category definitions,
// keyword tiers for quality scoring, document type signatures and the
// various word lists used by segmentation and coherence analysis.
//
// A Registry is built once at startup (see Default) and shared by reference
// across concurrent requests. Nothing in it is mutated after construction.
package registry

import "regexp"

// EntityKind identifies one of the fixed entity families the extractor
// recognizes. The set is closed: patterns are design-time data, not
// user-extensible.
type EntityKind string

const (
	EntityDates            EntityKind = "dates"
	EntityMonetaryAmounts  EntityKind = "monetary_amounts"
	EntityLegalReferences  EntityKind = "legal_references"
	EntityMeasurements     EntityKind = "measurements"
	EntityNormsStandards   EntityKind = "norms_standards"
	EntityMaterials        EntityKind = "materials"
	EntityTechnicalSpecs   EntityKind = "technical_specs"
	EntityRealEstateActors EntityKind = "real_estate_actors"
	EntityInsuranceTerms   EntityKind = "insurance_terms"
	EntityDeadlines        EntityKind = "deadlines"
	EntityPenalties        EntityKind = "penalties"
)

// Category is a content classification label.
type Category string

const (
	CategoryFinancial     Category = "financial"
	CategoryTimeline      Category = "timeline"
	CategoryObligations   Category = "obligations"
	CategoryGuarantees    Category = "guarantees"
	CategoryTechnical     Category = "technical_requirements"
	CategoryConditions    Category = "conditions"
	CategoryQuality       Category = "quality_control"
	CategorySafety        Category = "safety_security"
	CategoryGeneral       Category = "general"
)

// DocType is a document type label.
type DocType string

const (
	DocContratReservationVEFA DocType = "contrat_reservation_vefa"
	DocCCTP                   DocType = "cctp"
	DocActeNotarie            DocType = "acte_notarie"
	DocBailHabitation         DocType = "bail_habitation"
	DocBailCommercial         DocType = "bail_commercial"
	DocMarchePublic           DocType = "marche_public"
	DocPermisConstruire       DocType = "permis_construire"
	DocDevis                  DocType = "devis"
	DocFacture                DocType = "facture"
	DocContratGeneral         DocType = "contrat_general"
)

// EntityDef binds an entity kind to its ordered matchers. Regex patterns are
// applied first, in order; Keywords are matched by literal containment on
// the lowercased text.
type EntityDef struct {
	Kind     EntityKind
	Patterns []*regexp.Regexp
	Keywords []string
}

// CategoryDef defines one weighted classification category.
type CategoryDef struct {
	Name     Category
	Weight   float64
	Keywords []string
	Patterns []*regexp.Regexp
}

// ScoreCategoryDef is one entry of the secondary keyword-only score vector.
type ScoreCategoryDef struct {
	Name     string
	Keywords []string
}

// KeywordTier is one weighted quality keyword. Order of the slice is the
// tie-break order everywhere keywords compete.
type KeywordTier struct {
	Word string
	Tier int
}

// PartyPattern extracts one contractual role.
type PartyPattern struct {
	Role     string
	Patterns []*regexp.Regexp
}

// DocTypeDef holds the detection and extraction patterns for one document
// type. TitlePatterns serve both detection (hits weighted x3) and title
// extraction.
type DocTypeDef struct {
	Type          DocType
	TitlePatterns []*regexp.Regexp
	Parties       []PartyPattern
}

// ThemeGroup is one of the thematic keyword families used by the coherence
// analysis.
type ThemeGroup struct {
	Name     string
	Keywords []string
}

// AdaptiveGroup drives the document-wide adaptive chunk sizing: occurrences
// of Keywords elect a dominant group whose Delta adjusts the base target.
type AdaptiveGroup struct {
	Name     string
	Keywords []string
	Delta    int
}

// Registry is the full set of heuristic data. Treat as read-only once built.
type Registry struct {
	Entities        []EntityDef
	Categories      []CategoryDef
	ScoreCategories []ScoreCategoryDef
	QualityKeywords []KeywordTier
	PriorityWords   []KeywordTier
	DocTypes        []DocTypeDef
	ThemeGroups     []ThemeGroup
	AdaptiveGroups  []AdaptiveGroup

	// Segmentation data.
	Abbreviations      []string
	Connectors         []string
	LogicalConnectors  []string
	TableHeaderPhrases []string

	// Specificity term list for the quality scorer.
	SpecificityTerms []string

	// Minimum winning score for a category label; below it the label
	// falls back to general.
	MinCategoryConfidence float64

	// Generic fallback party pattern, tried when no role matched at all.
	GenericParties *regexp.Regexp

	// Location and project extraction.
	LocationPatterns []*regexp.Regexp
	CompanyForms     []string
	ProjectPattern   *regexp.Regexp

	// Contextual "signed/dated" patterns, in priority order, then the bare
	// date fallbacks.
	ContextDatePatterns []*regexp.Regexp
	BareDatePatterns    []*regexp.Regexp

	// Generic all-caps title line, used when no type-specific title matched.
	GenericTitlePattern *regexp.Regexp

	// Tokens protected by the normalizer so sentence splitting cannot cut
	// through them.
	ProtectedPatterns []*regexp.Regexp
}

func re(expr string) *regexp.Regexp { return regexp.MustCompile(expr) }

// Default builds the built-in French legal/real-estate registry.
func Default() *Registry {
	return &Registry{
		Entities:        entityDefs(),
		Categories:      categoryDefs(),
		ScoreCategories: scoreCategoryDefs(),
		QualityKeywords: qualityKeywords(),
		PriorityWords: []KeywordTier{
			{"contrat", 3}, {"prix", 3}, {"délai", 3}, {"garantie", 3},
			{"obligation", 2}, {"clause", 2}, {"article", 2}, {"conditions", 2},
			{"paiement", 2}, {"livraison", 2}, {"responsabilité", 2},
			{"assurance", 1}, {"modalité", 1}, {"échéance", 1},
		},
		DocTypes:    docTypeDefs(),
		ThemeGroups: themeGroups(),
		AdaptiveGroups: []AdaptiveGroup{
			{"financial", []string{"prix", "euros", "montant", "paiement", "tva", "acompte"}, 10},
			{"technical_requirements", []string{"technique", "norme", "matériau", "dtu", "spécification", "performance"}, 15},
			{"obligations", []string{"obligation", "engage", "doit", "responsabilité", "tenu"}, -5},
			{"timeline", []string{"délai", "livraison", "échéance", "planning", "durée"}, 0},
			{"legal_references", []string{"article", "décret", "loi", "code", "alinéa"}, -10},
		},
		Abbreviations: []string{
			"art.", "etc.", "M.", "Mme.", "Mlle.", "Dr.", "Me.", "cf.",
			"ex.", "chap.", "vol.", "réf.", "n°.", "p.", "al.",
		},
		Connectors: []string{
			"et", "ou", "mais", "donc", "car", "ainsi", "alors",
			"cependant", "toutefois", "néanmoins",
		},
		LogicalConnectors: []string{
			"car", "donc", "ainsi", "en effet", "par conséquent",
			"cependant", "toutefois", "néanmoins", "en outre", "par ailleurs",
		},
		TableHeaderPhrases: []string{
			"désignation", "quantité", "prix unitaire", "montant ht", "lot n°",
		},
		SpecificityTerms: []string{
			"immobilier", "construction", "logement", "bâtiment", "chantier",
			"promoteur", "copropriété", "urbanisme", "foncier", "cadastre",
			"notaire", "acquéreur", "résidence", "surface", "habitable",
		},
		MinCategoryConfidence: 1.0,
		GenericParties:        re(`(?i)entre\s+([A-ZÀ-Ü][^\n,]{10,80})\s+et\s+([A-ZÀ-Ü][^\n,]{10,80})`),
		LocationPatterns: []*regexp.Regexp{
			re(`([A-ZÀ-Ü][a-zà-ÿ]+(?:[\s\-][A-ZÀ-Ü][a-zà-ÿ]+)*)\s*\(\d{2,5}\)`),
			re(`(?i)situ[ée]+\s+à\s+([A-ZÀ-Ü][A-Za-zà-ÿ\-]+(?:\s+[A-ZÀ-Ü][A-Za-zà-ÿ\-]+)*)`),
			re(`(?i)commune\s+de\s+([A-ZÀ-Ü][A-Za-zà-ÿ\-]+(?:\s+[A-ZÀ-Ü][A-Za-zà-ÿ\-]+)*)`),
		},
		CompanyForms:   []string{"SARL", "SAS", "SA", "SASU", "EURL", "SCI", "SCCV"},
		ProjectPattern: re(`(?i)(?:programme|résidence|projet|opération)[^«\n]{0,80}«\s*([^»]{3,50})\s*»`),
		ContextDatePatterns: []*regexp.Regexp{
			re(`(?i)fait\s+à\s+[^\n,]{1,60}[,]?\s*le\s+(\d{1,2}\s+[a-zà-ÿ]+\s+\d{2,4}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
			re(`(?i)sign[ée]+\s+le\s+(\d{1,2}\s+[a-zà-ÿ]+\s+\d{2,4}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
			re(`(?i)en\s+date\s+du\s+(\d{1,2}\s+[a-zà-ÿ]+\s+\d{2,4}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
			re(`(?i)dat[ée]+\s+du\s+(\d{1,2}\s+[a-zà-ÿ]+\s+\d{2,4}|\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`),
		},
		BareDatePatterns: []*regexp.Regexp{
			re(`\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`),
			re(`(?i)\d{1,2}\s+(?:janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)\s+\d{2,4}`),
		},
		GenericTitlePattern: re(`(?m)^\s*([A-ZÀ-Ü][A-ZÀ-Ü0-9\s'\-]{18,100}?)\s*$`),
		ProtectedPatterns: []*regexp.Regexp{
			re(`(?i)article\s+\d+(?:[.\-]\d+)*`),
			re(`\d{1,3}(?:[\s.]\d{3})*\s*(?:euros?|€)`),
		},
	}
}

func entityDefs() []EntityDef {
	return []EntityDef{
		{
			Kind: EntityDates,
			Patterns: []*regexp.Regexp{
				re(`(?i)\d{1,2}\s+(?:janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)\s+\d{4}`),
				re(`\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`),
				re(`(?i)(?:janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)\s+\d{4}`),
			},
		},
		{
			Kind: EntityMonetaryAmounts,
			Patterns: []*regexp.Regexp{
				re(`(?i)\d{1,3}(?:[\s.,]\d{3})*(?:,\d{2})?\s*(?:euros?|€)`),
				re(`\d+(?:[\s,]\d+)*\s*EUR`),
				re(`(?i)\d+(?:[\s,]\d+)*\s*(?:\$|dollars?)`),
				re(`(?i)capital\s+(?:social\s+)?de\s+\d{1,3}(?:[\s.]\d{3})*`),
			},
		},
		{
			Kind: EntityLegalReferences,
			Patterns: []*regexp.Regexp{
				re(`(?i)article\s+[a-z]?\d+(?:[.\-]\d+)*`),
				re(`\b[LR]\s*\.?\s*\d{3}(?:-\d+)*`),
				re(`(?i)décret\s+n°\s*[\d\-]+`),
				re(`(?i)loi\s+n°\s*[\d\-]+`),
				re(`(?i)code\s+(?:civil|de\s+la\s+construction|de\s+l'urbanisme|de\s+commerce|des\s+assurances)`),
				re(`(?i)alinéa\s+\d+`),
			},
		},
		{
			Kind: EntityMeasurements,
			Patterns: []*regexp.Regexp{
				re(`(?i)\d+[.,]?\d*\s*(?:m²|m2|mètres?\s*carrés?)`),
				re(`(?i)\d+[.,]?\d*\s*(?:m³|m3|mètres?\s*cubes?)`),
				re(`(?i)\d+[.,]?\d*\s*(?:ml|mètres?\s+linéaires?)`),
				re(`(?i)\d+[.,]?\d*\s*(?:cm|centimètres?)\b`),
				re(`(?i)\d+[.,]?\d*\s*(?:mm|millimètres?)\b`),
				re(`(?i)\d+[.,]?\d*\s*(?:kg|kilogrammes?)\b`),
				re(`(?i)\d+[.,]?\d*\s*tonnes?\b`),
				re(`(?i)\d+[.,]?\d*\s*(?:%|pour\s*cent)`),
			},
		},
		{
			Kind: EntityNormsStandards,
			Patterns: []*regexp.Regexp{
				re(`(?i)DTU\s+[\d.]+`),
				re(`(?i)NF\s+EN\s+\d+`),
				re(`(?i)NF\s+[A-Z]?\s*\d+`),
				re(`(?i)ISO\s+\d+`),
				re(`(?i)CE\s+\d+`),
				re(`C\d+/\d+`),
				re(`HA\d+`),
				re(`(?i)RT\s*20\d{2}`),
			},
		},
		{
			Kind: EntityMaterials,
			Keywords: []string{
				"béton", "acier", "bois", "plâtre", "ciment", "sable", "gravier",
				"parpaing", "brique", "tuile", "ardoise", "zinc", "cuivre",
				"aluminium", "pvc", "polystyrène", "laine de verre", "laine de roche",
			},
		},
		{
			Kind: EntityTechnicalSpecs,
			Patterns: []*regexp.Regexp{
				re(`(?i)\d+[.,]?\d*\s*(?:dB|décibels?)`),
				re(`(?i)\d+[.,]?\d*\s*(?:kWh?|watts?)`),
				re(`(?i)classe\s+[A-G]\b`),
				re(`(?i)R\s*=\s*\d+[.,]?\d*`),
				re(`(?i)\d+[.,]?\d*\s*°C`),
			},
		},
		{
			Kind: EntityRealEstateActors,
			Keywords: []string{
				"maître d'ouvrage", "maître d'œuvre", "promoteur", "architecte",
				"notaire", "syndic", "bailleur", "preneur", "réservant",
				"réservataire", "entrepreneur", "acquéreur", "vendeur", "géomètre",
			},
		},
		{
			Kind: EntityInsuranceTerms,
			Keywords: []string{
				"dommages-ouvrage", "garantie décennale", "garantie biennale",
				"parfait achèvement", "responsabilité civile", "caution bancaire",
				"garantie financière d'achèvement", "assurance construction",
			},
		},
		{
			Kind: EntityDeadlines,
			Patterns: []*regexp.Regexp{
				re(`(?i)délai\s+de\s+\d+\s+(?:jours?|mois|semaines?|ans?)`),
				re(`(?i)dans\s+un\s+délai\s+de\s+\d+\s+(?:jours?|mois|semaines?|ans?)`),
				re(`(?i)sous\s+\d+\s+jours?`),
				re(`(?i)au\s+plus\s+tard\s+le\s+\d{1,2}[^\n,.]{0,30}`),
				re(`(?i)avant\s+le\s+\d{1,2}[/\-.\s][^\n,.]{0,30}`),
			},
		},
		{
			Kind: EntityPenalties,
			Patterns: []*regexp.Regexp{
				re(`(?i)pénalités?\s+de\s+retard`),
				re(`(?i)indemnités?\s+(?:de|d'un\s+montant\s+de)\s+[^\n,.]{0,40}`),
				re(`(?i)astreinte\s+de\s+[^\n,.]{0,40}`),
				re(`(?i)\d+[.,]?\d*\s*%\s+par\s+(?:jour|mois)\s+de\s+retard`),
			},
		},
	}
}

func categoryDefs() []CategoryDef {
	return []CategoryDef{
		{
			Name:     CategoryFinancial,
			Weight:   1.2,
			Keywords: []string{"prix", "coût", "tarif", "montant", "euros", "€", "facture", "paiement", "acompte", "tva"},
			Patterns: []*regexp.Regexp{
				re(`(?i)\d{1,3}(?:[\s.]\d{3})*\s*(?:euros?|€)`),
				re(`(?i)échéancier\s+de\s+paiement`),
			},
		},
		{
			Name:     CategoryTimeline,
			Weight:   1.1,
			Keywords: []string{"délai", "livraison", "échéance", "date", "planning", "durée", "terme", "calendrier"},
			Patterns: []*regexp.Regexp{
				re(`(?i)\d{1,2}\s+(?:janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre)\s+\d{4}`),
				re(`(?i)délai\s+de\s+\d+`),
			},
		},
		{
			Name:     CategoryObligations,
			Weight:   1.0,
			Keywords: []string{"obligation", "engage", "doit", "responsabilité", "devoir", "tenu", "incombe"},
			Patterns: []*regexp.Regexp{
				re(`(?i)s'engage\s+à`),
				re(`(?i)est\s+tenu\s+de`),
			},
		},
		{
			Name:     CategoryGuarantees,
			Weight:   1.1,
			Keywords: []string{"garantie", "assurance", "caution", "couverture", "protection"},
			Patterns: []*regexp.Regexp{
				re(`(?i)garantie\s+(?:décennale|biennale|financière)`),
			},
		},
		{
			Name:     CategoryTechnical,
			Weight:   1.0,
			Keywords: []string{"technique", "norme", "spécification", "matériau", "dtu", "performance", "isolation"},
			Patterns: []*regexp.Regexp{
				re(`(?i)DTU\s+[\d.]+`),
				re(`(?i)NF\s+(?:EN\s+)?\d+`),
			},
		},
		{
			Name:     CategoryConditions,
			Weight:   0.9,
			Keywords: []string{"condition", "clause", "modalité", "stipulation", "disposition"},
			Patterns: []*regexp.Regexp{
				re(`(?i)sous\s+(?:réserve|condition)`),
			},
		},
		{
			Name:     CategoryQuality,
			Weight:   0.9,
			Keywords: []string{"contrôle", "vérification", "test", "essai", "conformité", "réception"},
			Patterns: []*regexp.Regexp{
				re(`(?i)procès-verbal\s+de\s+réception`),
			},
		},
		{
			Name:     CategorySafety,
			Weight:   0.9,
			Keywords: []string{"sécurité", "protection", "risque", "danger", "prévention"},
			Patterns: []*regexp.Regexp{
				re(`(?i)plan\s+de\s+prévention`),
			},
		},
	}
}

func scoreCategoryDefs() []ScoreCategoryDef {
	return []ScoreCategoryDef{
		{"obligations", []string{"obligation", "engage", "doit", "responsabilité"}},
		{"conditions", []string{"condition", "clause", "modalité", "si"}},
		{"financial", []string{"prix", "coût", "euros", "€", "montant"}},
		{"timeline", []string{"délai", "date", "échéance", "livraison"}},
		{"guarantees", []string{"garantie", "assurance", "caution"}},
		{"technical_requirements", []string{"technique", "norme", "spécification"}},
		{"quality_control", []string{"contrôle", "vérification", "test"}},
		{"safety_security", []string{"sécurité", "protection", "risque"}},
		{"administrative", []string{"autorisation", "permis", "déclaration"}},
		{"definitions", []string{"définition", "signifie", "désigne"}},
		{"procedures", []string{"procédure", "méthode", "étape"}},
	}
}

func qualityKeywords() []KeywordTier {
	return []KeywordTier{
		// Universal contract vocabulary.
		{"contrat", 3}, {"prix", 3}, {"délai", 3}, {"garantie", 3},
		{"obligation", 3}, {"montant", 3}, {"somme", 3}, {"euros", 3},
		{"paiement", 3}, {"échéance", 3},
		// VEFA / real-estate programme vocabulary.
		{"vefa", 3}, {"réservation", 3}, {"réservataire", 3}, {"réservant", 3},
		{"livraison", 3}, {"achèvement", 3}, {"programme", 3}, {"logement", 3},
		{"résidence", 3}, {"projet", 3},
		// Secondary legal vocabulary.
		{"article", 2}, {"clause", 2}, {"conditions", 2}, {"responsabilité", 2},
		{"travaux", 2}, {"entreprise", 2}, {"convenu", 2}, {"techniques", 2},
		{"conforme", 2}, {"acte", 2}, {"vente", 2}, {"notaire", 2},
		{"spécifications", 3},
		// Supporting vocabulary.
		{"partie", 1}, {"engagement", 1}, {"modalité", 1}, {"société", 1},
		{"dénommée", 1}, {"capital", 1}, {"siège", 1}, {"représentée", 1},
		{"qualité", 1}, {"assurance", 1},
	}
}

func docTypeDefs() []DocTypeDef {
	return []DocTypeDef{
		{
			Type: DocContratReservationVEFA,
			TitlePatterns: []*regexp.Regexp{
				re(`(?i)contrat.{0,20}r[eé]servation(?:.{0,20}vefa)?`),
				re(`(?i)r[eé]servation.{0,30}futur.{0,10}ach[eè]vement`),
				re(`(?i)\bvefa\b`),
			},
			Parties: []PartyPattern{
				{Role: "reservant", Patterns: []*regexp.Regexp{
					re(`(?i)société\s+dénommée\s+([A-ZÀ-Ü][^\n]+?)\s+au\s+capital`),
					re(`(?i)dénommée\s+«?\s*([A-ZÀ-Ü][^\n»]{10,80})`),
					re(`(?i)r[eé]servant[^\n]*?([A-ZÀ-Ü][^\n]{10,80})`),
				}},
				{Role: "reservataire", Patterns: []*regexp.Regexp{
					re(`(?i)r[eé]servataire\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
			},
		},
		{
			Type: DocCCTP,
			TitlePatterns: []*regexp.Regexp{
				re(`(?i)\bcctp\b`),
				re(`(?i)cahier.{0,20}clauses.{0,20}techniques`),
				re(`(?i)cahier\s+des\s+charges`),
			},
			Parties: []PartyPattern{
				{Role: "maitre_ouvrage", Patterns: []*regexp.Regexp{
					re(`(?i)ma[iî]tre.{0,5}d?'?ouvrage\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
				{Role: "entrepreneur", Patterns: []*regexp.Regexp{
					re(`(?i)entrepreneur\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
			},
		},
		{
			Type: DocActeNotarie,
			TitlePatterns: []*regexp.Regexp{
				re(`(?i)acte\s+(?:authentique|notari[ée])`),
				re(`(?i)par-devant\s+ma[iî]tre`),
				re(`(?i)étude\s+notariale`),
			},
			Parties: []PartyPattern{
				{Role: "vendeur", Patterns: []*regexp.Regexp{
					re(`(?i)vendeur\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
				{Role: "acquereur", Patterns: []*regexp.Regexp{
					re(`(?i)acqu[ée]reur\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
			},
		},
		{
			Type: DocBailCommercial,
			TitlePatterns: []*regexp.Regexp{
				re(`(?i)bail\s+commercial`),
				re(`(?i)fonds\s+de\s+commerce`),
			},
			Parties: []PartyPattern{
				{Role: "bailleur", Patterns: []*regexp.Regexp{
					re(`(?i)bailleur\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
				{Role: "preneur", Patterns: []*regexp.Regexp{
					re(`(?i)preneur\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
			},
		},
		{
			Type: DocBailHabitation,
			TitlePatterns: []*regexp.Regexp{
				re(`(?i)(?:contrat\s+de\s+)?bail\b`),
				re(`(?i)contrat\s+de\s+location`),
				re(`(?i)\bloyer\b`),
			},
			Parties: []PartyPattern{
				{Role: "bailleur", Patterns: []*regexp.Regexp{
					re(`(?i)bailleur\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
				{Role: "locataire", Patterns: []*regexp.Regexp{
					re(`(?i)locataire\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
			},
		},
		{
			Type: DocMarchePublic,
			TitlePatterns: []*regexp.Regexp{
				re(`(?i)march[ée]\s+public`),
				re(`(?i)appel\s+d'offres`),
				re(`(?i)soumission`),
			},
			Parties: []PartyPattern{
				{Role: "pouvoir_adjudicateur", Patterns: []*regexp.Regexp{
					re(`(?i)pouvoir\s+adjudicateur\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
				{Role: "titulaire", Patterns: []*regexp.Regexp{
					re(`(?i)titulaire\s*[:\s]\s*([A-ZÀ-Ü][^\n]{10,80})`),
				}},
			},
		},
		{
			Type: DocPermisConstruire,
			TitlePatterns: []*regexp.Regexp{
				re(`(?i)permis\s+de\s+construire`),
				re(`(?i)autorisation\s+d'urbanisme`),
			},
		},
		{
			Type: DocDevis,
			TitlePatterns: []*regexp.Regexp{
				re(`(?i)\bdevis\b`),
				re(`(?i)estimation|chiffrage`),
			},
		},
		{
			Type: DocFacture,
			TitlePatterns: []*regexp.Regexp{
				re(`(?i)\bfacture\b`),
				re(`(?i)facturation`),
			},
		},
	}
}

func themeGroups() []ThemeGroup {
	return []ThemeGroup{
		{"contractual", []string{"contrat", "clause", "partie", "engagement", "convention"}},
		{"financial", []string{"prix", "euros", "montant", "paiement", "acompte"}},
		{"temporal", []string{"délai", "date", "échéance", "livraison", "durée"}},
		{"technical", []string{"technique", "norme", "matériau", "travaux", "construction"}},
		{"legal", []string{"article", "loi", "décret", "code", "droit"}},
	}
}
