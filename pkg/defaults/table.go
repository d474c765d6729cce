package defaults

// Entry is one optional key and the value it takes when the user leaves it out.
type Entry struct {
	Key   string
	Value any
}

// Group collects the defaults of one optional subsystem.
type Group struct {
	Name     string
	Defaults []Entry
}

// Table holds the static defaults. Values are plain data; anything derived
// from other keys lives in the provider.
var Table = []Group{
	{
		Name: "network",
		Defaults: []Entry{
			{"node_ntp_servers", []string{"162.159.200.1", "162.159.200.123"}},
			{"cluster_pod_cidr", "10.42.0.0/16"},
			{"cluster_svc_cidr", "10.43.0.0/16"},
			{"cilium_loadbalancer_mode", "dsr"},
		},
	},
	{
		Name: "repository",
		Defaults: []Entry{
			{"repository_branch", "main"},
			{"repository_visibility", "public"},
		},
	},
	{
		Name: "scheduling",
		Defaults: []Entry{
			{"allow_scheduling_on_control_planes", true},
		},
	},
	{
		Name: "proxmox",
		Defaults: []Entry{
			{"proxmox_insecure", true},
			{"proxmox_region", "talos-k8s"},
			{"proxmox_storage", "local-lvm"},
		},
	},
	{
		Name: "envoy-ai-gateway",
		Defaults: []Entry{
			{"envoy_ai_gateway_enabled", false},
			{"azure_openai_us_east_api_key", ""},
			{"azure_openai_us_east_resource_name", ""},
			{"azure_openai_us_east2_api_key", ""},
			{"azure_openai_us_east2_resource_name", ""},
			{"azure_cohere_rerank_api_key", ""},
			{"azure_cohere_rerank_api_base", ""},
			{"azure_cohere_embed_api_key", ""},
			{"azure_cohere_embed_api_base", ""},
			{"azure_anthropic_api_key", ""},
			{"azure_anthropic_api_base", ""},
		},
	},
	{
		Name: "observability",
		Defaults: []Entry{
			{"observability_enabled", false},
			{"grafana_admin_password", "admin"},
			{"prometheus_retention", "7d"},
			{"prometheus_retention_size", "45GB"},
			{"prometheus_storage_size", "50Gi"},
			{"prometheus_storage_class", "proxmox-csi"},
			{"prometheus_replicas", 1},
			{"prometheus_alertmanager_replicas", 1},
			{"alertmanager_storage_size", "5Gi"},
			{"grafana_storage_size", "10Gi"},
		},
	},
	{
		Name: "onedev",
		Defaults: []Entry{
			{"onedev_enabled", false},
			{"onedev_admin_password", ""},
			{"onedev_storage_size", "100Gi"},
			{"onedev_storage_class", "proxmox-csi"},
			{"onedev_database_type", ""},
			{"onedev_database_host", ""},
			{"onedev_database_port", "3306"},
			{"onedev_database_name", "onedev"},
			{"onedev_database_user", "onedev"},
			{"onedev_database_password", ""},
			{"onedev_ssh_port", 6611},
			{"onedev_cpu_limit", "2000m"},
			{"onedev_memory_limit", "4Gi"},
			{"onedev_cpu_request", "500m"},
			{"onedev_memory_request", "2Gi"},
		},
	},
	{
		Name: "workos",
		Defaults: []Entry{
			{"workos_client_id", ""},
			{"workos_client_secret", ""},
			{"workos_subdomain", ""},
		},
	},
	{
		Name: "mcp-gateway",
		Defaults: []Entry{
			{"mcp_gateway_enabled", false},
			{"mcp_gateway_addr", ""},
			{"mcp_session_timeout", 3600},
		},
	},
	{
		Name: "keycloak",
		Defaults: []Entry{
			{"keycloak_enabled", false},
			{"keycloak_admin_password", ""},
			{"keycloak_db_password", ""},
			{"keycloak_replicas", 2},
			{"keycloak_cpu_request", "250m"},
			{"keycloak_memory_request", "512Mi"},
			{"keycloak_cpu_limit", "1000m"},
			{"keycloak_memory_limit", "1Gi"},
			{"keycloak_postgresql_enabled", true},
			{"keycloak_postgresql_replicas", 3},
			{"keycloak_postgresql_storage_size", "10Gi"},
			{"keycloak_oidc_client_secret", ""},
			{"keycloak_oidc_cookie_domain", ""},
			{"keycloak_entra_id_enabled", false},
			{"keycloak_entra_id_tenant_id", ""},
			{"keycloak_entra_id_client_id", ""},
			{"keycloak_entra_id_client_secret", ""},
			{"keycloak_google_enabled", false},
			{"keycloak_google_client_id", ""},
			{"keycloak_google_client_secret", ""},
		},
	},
	{
		Name: "agentgateway",
		Defaults: []Entry{
			{"agentgateway_enabled", false},
			{"agentgateway_addr", ""},
			{"agentgateway_scopes", []string{"openid", "profile", "email", "offline_access"}},
			{"keycloak_agentgateway_client_secret", ""},
		},
	},
	{
		Name: "obot",
		Defaults: []Entry{
			{"obot_enabled", false},
			{"obot_hostname", "obot"},
			{"obot_entra_tenant_id", ""},
			{"obot_entra_client_id", ""},
			{"obot_entra_client_secret", ""},
			{"obot_postgres_host", ""},
			{"obot_postgres_db", "obot"},
			{"obot_postgres_user", "obot"},
			{"obot_postgres_password", ""},
			{"obot_mcp_namespace", "obot-mcp"},
			{"obot_cookie_secret", ""},
			{"obot_encryption_key", ""},
			{"obot_bootstrap_token", ""},
			{"obot_admin_emails", ""},
			{"obot_owner_emails", ""},
			{"obot_storage_size", "20Gi"},
			{"obot_storage_class", "proxmox-csi"},
			{"obot_postgresql_replicas", 3},
			{"obot_postgresql_storage_size", "10Gi"},
			{"obot_replicas", 1},
			{"obot_cpu_request", "500m"},
			{"obot_cpu_limit", "2000m"},
			{"obot_memory_request", "1Gi"},
			{"obot_memory_limit", "4Gi"},
			{"obot_encryption_provider", "custom"},
			{"obot_use_ai_gateway", true},
			{"obot_use_agentgateway", false},
			// S3 workspace storage, needed for more than one replica.
			{"obot_workspace_provider", "directory"},
			{"obot_s3_bucket", ""},
			{"obot_s3_endpoint", ""},
			{"obot_s3_region", "us-east-1"},
			{"obot_s3_access_key", ""},
			{"obot_s3_secret_key", ""},
			{"obot_s3_use_path_style", false},
		},
	},
	{
		Name: "minio",
		Defaults: []Entry{
			{"minio_enabled", false},
			{"minio_chart_version", "5.4.0"},
			{"minio_mode", "standalone"},
			{"minio_replicas", 1},
			{"minio_root_user", "admin"},
			{"minio_root_password", ""},
			{"minio_storage_class", "proxmox-csi"},
			{"minio_storage_size", "50Gi"},
			{"minio_memory_request", "512Mi"},
			{"minio_memory_limit", "2Gi"},
			{"minio_cpu_request", "250m"},
			{"minio_ingress_enabled", false},
			{"minio_console_hostname", "minio"},
			{"minio_buckets", []any{}},
			{"minio_users", []any{}},
		},
	},
	{
		Name: "kagent",
		Defaults: []Entry{
			{"kagent_enabled", false},
			{"kagent_provider", "anthropic"},
			{"kagent_default_model", "claude-3-5-haiku"},
			{"kagent_anthropic_api_key", ""},
			{"kagent_openai_api_key", ""},
			{"kagent_openai_api_base", ""},
			{"kagent_gemini_api_key", ""},
			{"kagent_azure_endpoint", ""},
			{"kagent_azure_deployment", ""},
			{"kagent_ollama_host", "ollama.ollama.svc.cluster.local:11434"},
			{"kagent_ui_enabled", true},
			{"kagent_ui_replicas", 1},
			{"kagent_controller_replicas", 1},
			{"kagent_controller_log_level", "info"},
			{"kagent_agents_enabled", []string{"k8s", "helm", "observability"}},
			{"kagent_otlp_enabled", false},
			{"kagent_otlp_endpoint", ""},
			{"kagent_database_type", "sqlite"},
			{"kagent_postgres_url", ""},
			{"kagent_kmcp_enabled", true},
			{"kagent_write_operations_enabled", false},
			{"kagent_grafana_url", "http://kube-prometheus-stack-grafana.observability.svc:80/api"},
			{"kagent_grafana_api_key", ""},
			{"kagent_postgresql_replicas", 3},
			{"kagent_postgresql_storage_size", "10Gi"},
			{"kagent_postgres_user", "kagent"},
			{"kagent_postgres_password", ""},
		},
	},
	{
		Name: "litellm",
		Defaults: []Entry{
			{"litellm_enabled", false},
			{"litellm_master_key", ""},
			{"litellm_salt_key", ""},
			{"litellm_db_password", ""},
			{"litellm_cache_password", ""},
			{"litellm_database_url", ""},
			{"litellm_redis_url", ""},
			{"litellm_mcp_enabled", true},
			{"litellm_replicas_min", 2},
			{"litellm_replicas_max", 5},
			{"litellm_cpu_request", "500m"},
			{"litellm_cpu_limit", "2000m"},
			{"litellm_memory_request", "512Mi"},
			{"litellm_memory_limit", "2Gi"},
			{"litellm_postgresql_replicas", 3},
			{"litellm_postgresql_storage_size", "20Gi"},
			{"litellm_cache_memory", "1Gi"},
			{"litellm_langfuse_enabled", false},
			{"litellm_langfuse_host", "https://cloud.langfuse.com"},
			{"litellm_langfuse_public_key", ""},
			{"litellm_langfuse_secret_key", ""},
		},
	},
	{
		Name: "cognee",
		Defaults: []Entry{
			{"cognee_enabled", false},
			{"cognee_dedicated_db", true},
			{"cognee_db_name", "cognee"},
			{"cognee_db_password", ""},
			{"cognee_neo4j_password", ""},
			{"cognee_neo4j_version", "5.26.0"},
			{"cognee_neo4j_storage_size", "10Gi"},
			{"cognee_embedding_model", "text-embedding-3-large"},
			{"cognee_embedding_dimensions", 3072},
			{"cognee_mcp_server_name", "cognee-mcp"},
			{"cognee_api_enabled", false},
			{"cognee_version", "0.5.0"},
			{"cognee_replicas", 1},
			{"cognee_api_resources_requests_cpu", "100m"},
			{"cognee_api_resources_requests_memory", "512Mi"},
			{"cognee_api_resources_limits_cpu", "2000m"},
			{"cognee_api_resources_limits_memory", "4Gi"},
		},
	},
}
