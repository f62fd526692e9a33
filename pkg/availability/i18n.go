package availability

import "strings"

// Message keys used by the controller and the dashboard.
const (
	MsgTitle             = "model_availability.title"
	MsgUnavailableCount  = "model_availability.unavailable_count"
	MsgNoUnavailable     = "model_availability.no_unavailable"
	MsgNoUnavailableDesc = "model_availability.no_unavailable_desc"
	MsgFetchFailed       = "model_availability.fetch_failed"
	MsgFetchFailedDesc   = "model_availability.fetch_failed_desc"
	MsgStale             = "model_availability.stale"
	MsgColModelName      = "model_availability.model_name"
	MsgColProvider       = "model_availability.provider"
	MsgColClient         = "model_availability.client"
	MsgColReason         = "model_availability.reason"
	MsgColSince          = "model_availability.since"
	MsgColActions        = "model_availability.actions"
	MsgReasonQuota       = "model_availability.reason_quota_exceeded"
	MsgReasonCooldown    = "model_availability.reason_cooldown"
	MsgReasonSuspended   = "model_availability.reason_suspended"
	MsgReset             = "model_availability.reset"
	MsgResetSuccess      = "model_availability.reset_success"
	MsgResetError        = "model_availability.reset_error"
	MsgFetchError        = "model_availability.fetch_error"
	MsgLoading           = "common.loading"
	MsgRefresh           = "common.refresh"
)

// Translator resolves a message key to localized text. Params are
// interpolated into {{name}} placeholders.
type Translator interface {
	T(key string, params map[string]string) string
}

// Catalog is a map-backed Translator. Unknown keys render as the key itself.
type Catalog map[string]string

// T implements Translator.
func (c Catalog) T(key string, params map[string]string) string {
	msg, ok := c[key]
	if !ok {
		return key
	}
	if len(params) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// DefaultCatalog returns the English strings.
func DefaultCatalog() Catalog {
	return Catalog{
		MsgTitle:             "Model Availability",
		MsgUnavailableCount:  "{{count}} unavailable",
		MsgNoUnavailable:     "All models are available",
		MsgNoUnavailableDesc: "No model is currently restricted by quota, suspension or cooldown.",
		MsgFetchFailed:       "Could not load model availability",
		MsgFetchFailedDesc:   "The availability service did not answer. Try refreshing.",
		MsgStale:             "Showing the last known list; the latest refresh failed.",
		MsgColModelName:      "Model",
		MsgColProvider:       "Provider",
		MsgColClient:         "Client",
		MsgColReason:         "Reason",
		MsgColSince:          "Since",
		MsgColActions:        "Actions",
		MsgReasonQuota:       "Quota exceeded",
		MsgReasonCooldown:    "Cooling down",
		MsgReasonSuspended:   "Suspended",
		MsgReset:             "Reset",
		MsgResetSuccess:      "Availability of {{model}} has been reset",
		MsgResetError:        "Failed to reset model availability",
		MsgFetchError:        "Failed to load unavailable models",
		MsgLoading:           "Loading...",
		MsgRefresh:           "Refresh",
	}
}

// ChineseCatalog returns the Simplified Chinese strings.
func ChineseCatalog() Catalog {
	return Catalog{
		MsgTitle:             "模型可用性",
		MsgUnavailableCount:  "{{count}} 个不可用",
		MsgNoUnavailable:     "所有模型均可用",
		MsgNoUnavailableDesc: "当前没有因配额、暂停或冷却而受限的模型。",
		MsgFetchFailed:       "无法加载模型可用性",
		MsgFetchFailedDesc:   "可用性服务没有响应，请重试刷新。",
		MsgStale:             "正在显示上次获取的列表；最近一次刷新失败。",
		MsgColModelName:      "模型",
		MsgColProvider:       "提供商",
		MsgColClient:         "客户端",
		MsgColReason:         "原因",
		MsgColSince:          "开始时间",
		MsgColActions:        "操作",
		MsgReasonQuota:       "配额已用尽",
		MsgReasonCooldown:    "冷却中",
		MsgReasonSuspended:   "已暂停",
		MsgReset:             "重置",
		MsgResetSuccess:      "已重置 {{model}} 的可用性",
		MsgResetError:        "重置模型可用性失败",
		MsgFetchError:        "获取不可用模型失败",
		MsgLoading:           "加载中...",
		MsgRefresh:           "刷新",
	}
}

// CatalogFor returns the catalog for a locale tag ("en", "zh", "zh-CN", ...).
// Unknown locales fall back to English.
func CatalogFor(locale string) Catalog {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(locale)), "zh") {
		return ChineseCatalog()
	}
	return DefaultCatalog()
}
