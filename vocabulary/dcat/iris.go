package dcat

// Namespace is the base IRI for the W3C Data Catalog vocabulary.
const Namespace = "http://www.w3.org/ns/dcat#"

// TermsNamespace is the base IRI for Dublin Core terms.
const TermsNamespace = "http://purl.org/dc/terms/"

// FoafNamespace is the base IRI for FOAF terms.
const FoafNamespace = "http://xmlns.com/foaf/0.1/"

// VcardNamespace is the base IRI for vCard terms.
const VcardNamespace = "http://www.w3.org/2006/vcard/ns#"

// Class IRIs for the catalog vocabulary classes.
const (
	// ClassCatalog represents a curated collection of metadata about resources.
	ClassCatalog = Namespace + "Catalog"

	// ClassDataset represents a collection of data published by a single agent.
	ClassDataset = Namespace + "Dataset"

	// ClassDistribution represents a specific available form of a dataset.
	ClassDistribution = Namespace + "Distribution"

	// ClassDataService represents a collection of operations accessible over the web.
	ClassDataService = Namespace + "DataService"

	// ClassCatalogRecord represents a metadata record in a catalog.
	ClassCatalogRecord = Namespace + "CatalogRecord"

	// ClassAgent represents a responsible person or organization.
	ClassAgent = FoafNamespace + "Agent"
)

// ClassIRIs maps local class names of the catalog vocabulary to their
// canonical IRIs. The schema merger consumes this for type enrichment.
var ClassIRIs = map[string]string{
	"Catalog":       ClassCatalog,
	"Dataset":       ClassDataset,
	"Distribution":  ClassDistribution,
	"DataService":   ClassDataService,
	"CatalogRecord": ClassCatalogRecord,
	"Agent":         ClassAgent,
}
