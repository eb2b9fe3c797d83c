package dcat

import "github.com/c360studio/semstreams/vocabulary"

// Catalog predicates describe a curated collection of assets.
const (
	// CatalogTitle is the catalog title.
	CatalogTitle = "dcat.catalog.title"

	// CatalogDescription is the free-text catalog description.
	CatalogDescription = "dcat.catalog.description"

	// CatalogPublisher links the catalog to its publishing agent.
	CatalogPublisher = "dcat.catalog.publisher"
)

// Dataset predicates describe a single published collection of data.
const (
	// DatasetTitle is the dataset title.
	DatasetTitle = "dcat.dataset.title"

	// DatasetDescription is the free-text dataset description.
	DatasetDescription = "dcat.dataset.description"

	// DatasetIssued is the formal issuance date.
	DatasetIssued = "dcat.dataset.issued"

	// DatasetModified is the most recent change date.
	DatasetModified = "dcat.dataset.modified"

	// DatasetIdentifier is the external identifier.
	DatasetIdentifier = "dcat.dataset.identifier"

	// DatasetKeyword is a descriptive keyword or tag.
	DatasetKeyword = "dcat.dataset.keyword"

	// DatasetConformsTo names the standard the dataset conforms to.
	DatasetConformsTo = "dcat.dataset.conforms_to"

	// DatasetContactPoint links to the responsible contact agent.
	DatasetContactPoint = "dcat.dataset.contact_point"

	// DatasetDistribution links to an available distribution.
	DatasetDistribution = "dcat.dataset.distribution"
)

// Distribution predicates describe one accessible form of a dataset.
const (
	// DistributionAccessURL is the access URL.
	DistributionAccessURL = "dcat.distribution.access_url"

	// DistributionMediaType is the IANA media type.
	DistributionMediaType = "dcat.distribution.media_type"

	// DistributionByteSize is the size in bytes.
	DistributionByteSize = "dcat.distribution.byte_size"

	// DistributionChecksum is the content checksum.
	DistributionChecksum = "dcat.distribution.checksum"
)

// DataService predicates describe an operation endpoint serving data.
const (
	// DataServiceTitle is the service title.
	DataServiceTitle = "dcat.data_service.title"

	// DataServiceEndpointURL is the root endpoint URL.
	DataServiceEndpointURL = "dcat.data_service.endpoint_url"

	// DataServiceServesDataset links to a dataset the service serves.
	DataServiceServesDataset = "dcat.data_service.serves_dataset"
)

// CatalogRecord predicates describe a catalog's registration entry.
const (
	// CatalogRecordTitle is the record title.
	CatalogRecordTitle = "dcat.catalog_record.title"

	// CatalogRecordListingDate is the date of listing in the catalog.
	CatalogRecordListingDate = "dcat.catalog_record.listing_date"

	// CatalogRecordPrimaryTopic links to the described dataset.
	CatalogRecordPrimaryTopic = "dcat.catalog_record.primary_topic"
)

// Agent predicates describe a responsible person or organization.
const (
	// AgentName is the agent's name.
	AgentName = "dcat.agent.name"

	// AgentOrganization is the agent's organization.
	AgentOrganization = "dcat.agent.organization"

	// AgentEmail is the agent's contact email.
	AgentEmail = "dcat.agent.email"
)

func registerCatalogPredicates() {
	vocabulary.Register(CatalogTitle,
		vocabulary.WithDescription("Catalog title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcTitle))

	vocabulary.Register(CatalogDescription,
		vocabulary.WithDescription("Catalog description"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(TermsNamespace+"description"))

	vocabulary.Register(CatalogPublisher,
		vocabulary.WithDescription("Publishing agent"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(TermsNamespace+"publisher"))

	vocabulary.Register(DatasetTitle,
		vocabulary.WithDescription("Dataset title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcTitle))

	vocabulary.Register(DatasetDescription,
		vocabulary.WithDescription("Dataset description"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(TermsNamespace+"description"))

	vocabulary.Register(DatasetIssued,
		vocabulary.WithDescription("Formal issuance date"),
		vocabulary.WithDataType("date"),
		vocabulary.WithIRI(TermsNamespace+"issued"))

	vocabulary.Register(DatasetModified,
		vocabulary.WithDescription("Most recent change date"),
		vocabulary.WithDataType("date"),
		vocabulary.WithIRI(TermsNamespace+"modified"))

	vocabulary.Register(DatasetIdentifier,
		vocabulary.WithDescription("External identifier"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcIdentifier))

	vocabulary.Register(DatasetKeyword,
		vocabulary.WithDescription("Descriptive keyword or tag"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"keyword"))

	vocabulary.Register(DatasetConformsTo,
		vocabulary.WithDescription("Standard the dataset conforms to"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(TermsNamespace+"conformsTo"))

	vocabulary.Register(DatasetContactPoint,
		vocabulary.WithDescription("Responsible contact agent"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"contactPoint"))

	vocabulary.Register(DatasetDistribution,
		vocabulary.WithDescription("Available distribution"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"distribution"))
}

func registerDistributionPredicates() {
	vocabulary.Register(DistributionAccessURL,
		vocabulary.WithDescription("Access URL"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"accessURL"))

	vocabulary.Register(DistributionMediaType,
		vocabulary.WithDescription("IANA media type"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"mediaType"))

	vocabulary.Register(DistributionByteSize,
		vocabulary.WithDescription("Size in bytes"),
		vocabulary.WithDataType("float"),
		vocabulary.WithIRI(Namespace+"byteSize"))

	vocabulary.Register(DistributionChecksum,
		vocabulary.WithDescription("Content checksum"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI("http://spdx.org/rdf/terms#checksum"))

	vocabulary.Register(DataServiceTitle,
		vocabulary.WithDescription("Data service title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcTitle))

	vocabulary.Register(DataServiceEndpointURL,
		vocabulary.WithDescription("Root endpoint URL"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"endpointURL"))

	vocabulary.Register(DataServiceServesDataset,
		vocabulary.WithDescription("Dataset the service serves"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"servesDataset"))
}

func registerRecordPredicates() {
	vocabulary.Register(CatalogRecordTitle,
		vocabulary.WithDescription("Catalog record title"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcTitle))

	vocabulary.Register(CatalogRecordListingDate,
		vocabulary.WithDescription("Date of listing in the catalog"),
		vocabulary.WithDataType("date"),
		vocabulary.WithIRI(TermsNamespace+"issued"))

	vocabulary.Register(CatalogRecordPrimaryTopic,
		vocabulary.WithDescription("Dataset the record describes"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(FoafNamespace+"primaryTopic"))

	vocabulary.Register(AgentName,
		vocabulary.WithDescription("Agent name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.FoafName))

	vocabulary.Register(AgentOrganization,
		vocabulary.WithDescription("Agent organization"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(VcardNamespace+"organization-name"))

	vocabulary.Register(AgentEmail,
		vocabulary.WithDescription("Agent contact email"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(FoafNamespace+"mbox"))
}

func init() {
	registerCatalogPredicates()
	registerDistributionPredicates()
	registerRecordPredicates()
}
