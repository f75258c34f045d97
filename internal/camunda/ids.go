package camunda

// Products offered by the selector, in display order.
const (
	Zeebe      = "Zeebe"
	Operate    = "Operate"
	Tasklist   = "Tasklist"
	Optimize   = "Optimize"
	Identity   = "Identity"
	Connectors = "Connectors"
	WebModeler = "Web Modeler"
)

// Products lists every selectable product.
var Products = []string{Zeebe, Operate, Tasklist, Optimize, Identity, Connectors, WebModeler}

// Search database variants.
const (
	Elasticsearch = "Elasticsearch"
	OpenSearch    = "OpenSearch"
)

// Web Modeler database options. Only PostgreSQL produces configuration.
const (
	PostgreSQL = "PostgreSQL"
	Oracle     = "Oracle"
	MSSQL      = "Microsoft SQL Server"
)

// Yes/No answers.
const (
	Yes = "Yes"
	No  = "No"
)

// Question ids. Answers are stored in one flat map keyed by these.
const (
	QProducts = "products"

	QSearchDatabase      = "search_database"
	QShareSearchDatabase = "share_search_database"
	QElasticsearchOn     = "elasticsearch_enabled"

	QESURL      = "es_url"
	QESUsername = "es_username"
	QESPassword = "es_password"

	QOSURL      = "os_url"
	QOSUsername = "os_username"
	QOSPassword = "os_password"

	QOperateDBURL      = "operate_db_url"
	QOperateDBUsername = "operate_db_username"
	QOperateDBPassword = "operate_db_password"
	QOperateEnv        = "operate_env"

	QTasklistDBURL      = "tasklist_db_url"
	QTasklistDBUsername = "tasklist_db_username"
	QTasklistDBPassword = "tasklist_db_password"
	QTasklistEnv        = "tasklist_env"

	QOptimizeDBURL      = "optimize_db_url"
	QOptimizeDBUsername = "optimize_db_username"
	QOptimizeDBPassword = "optimize_db_password"
	QOptimizeEnv        = "optimize_env"

	QZeebeEnv      = "zeebe_env"
	QIdentityEnv   = "identity_env"
	QConnectorsEnv = "connectors_env"

	QWebModelerDatabase   = "webmodeler_database"
	QWebModelerDBURL      = "webmodeler_db_url"
	QWebModelerDBHost     = "webmodeler_db_host"
	QWebModelerDBUser     = "webmodeler_db_user"
	QWebModelerDBPassword = "webmodeler_db_password"

	QWebModelerRestAPIEnv    = "webmodeler_restapi_env"
	QWebModelerWebAppEnv     = "webmodeler_webapp_env"
	QWebModelerWebSocketsEnv = "webmodeler_websockets_env"
)

// SearchFields names the url, username and password questions of one
// search database connection.
type SearchFields struct {
	URL      string
	Username string
	Password string
}

// SharedSearchFields returns the shared connection questions for a search
// database variant. Anything other than OpenSearch maps to Elasticsearch.
func SharedSearchFields(variant string) SearchFields {
	if variant == OpenSearch {
		return SearchFields{URL: QOSURL, Username: QOSUsername, Password: QOSPassword}
	}
	return SearchFields{URL: QESURL, Username: QESUsername, Password: QESPassword}
}

// OperateSearchFields are Operate's own connection questions.
var OperateSearchFields = SearchFields{URL: QOperateDBURL, Username: QOperateDBUsername, Password: QOperateDBPassword}

// TasklistSearchFields are Tasklist's own connection questions.
var TasklistSearchFields = SearchFields{URL: QTasklistDBURL, Username: QTasklistDBUsername, Password: QTasklistDBPassword}

// OptimizeSearchFields are Optimize's connection questions. Optimize never
// shares its database.
var OptimizeSearchFields = SearchFields{URL: QOptimizeDBURL, Username: QOptimizeDBUsername, Password: QOptimizeDBPassword}
