package dashboard

import (
	"strconv"

	"github.com/mihaimyh/goavail/pkg/availability"
)

type pageData struct {
	Title        string
	CountLabel   string
	RefreshLabel string
	LoadingLabel string
	ResetLabel   string
	Loading      bool
	View         availability.View
	Stale        bool
	StaleBanner  string
	EmptyTitle   string
	EmptyDesc    string
	FailedTitle  string
	FailedDesc   string
	AutoReload   string
	Headers      []string
	Flashes      []Flash
	Rows         []rowData
}

type rowData struct {
	Key         string
	ModelID     string
	DisplayName string
	Provider    string
	ClientID    string
	ReasonClass string
	ReasonLabel string
	Since       string
	RowClass    string
	Resetting   bool
}

func (h *Handler) buildPage(state availability.State) pageData {
	t := h.translator
	data := pageData{
		Title:        t.T(availability.MsgTitle, nil),
		CountLabel:   t.T(availability.MsgUnavailableCount, map[string]string{"count": strconv.Itoa(len(state.Records))}),
		RefreshLabel: t.T(availability.MsgRefresh, nil),
		LoadingLabel: t.T(availability.MsgLoading, nil),
		ResetLabel:   t.T(availability.MsgReset, nil),
		Loading:      state.Loading,
		View:         state.View(),
		Stale:        state.Stale,
		StaleBanner:  t.T(availability.MsgStale, nil),
		EmptyTitle:   t.T(availability.MsgNoUnavailable, nil),
		EmptyDesc:    t.T(availability.MsgNoUnavailableDesc, nil),
		FailedTitle:  t.T(availability.MsgFetchFailed, nil),
		FailedDesc:   t.T(availability.MsgFetchFailedDesc, nil),
		Headers: []string{
			t.T(availability.MsgColModelName, nil),
			t.T(availability.MsgColProvider, nil),
			t.T(availability.MsgColClient, nil),
			t.T(availability.MsgColReason, nil),
			t.T(availability.MsgColSince, nil),
			t.T(availability.MsgColActions, nil),
		},
	}
	if state.Loading || state.Resetting.Len() > 0 {
		data.AutoReload = h.reloadSeconds()
	}
	if h.flash != nil {
		data.Flashes = h.flash.Recent()
	}

	data.Rows = make([]rowData, 0, len(state.Records))
	for i, m := range state.Records {
		rowClass := "even"
		if i%2 == 1 {
			rowClass = "odd"
		}
		data.Rows = append(data.Rows, rowData{
			Key:         m.Key().String(),
			ModelID:     m.ModelID,
			DisplayName: availability.DisplayName(m),
			Provider:    availability.ProviderLabel(m),
			ClientID:    m.ClientID,
			ReasonClass: "reason-" + string(availability.CategoryOf(m.Reason)),
			ReasonLabel: availability.ReasonLabel(m, t),
			Since:       availability.FormatSince(m.Since, h.display),
			RowClass:    rowClass,
			Resetting:   state.Resetting.Has(m.Key()),
		})
	}
	return data
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{if .AutoReload}}<meta http-equiv="refresh" content="{{.AutoReload}}">{{end}}
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #1f2933; }
.header { display: flex; justify-content: space-between; align-items: center; }
.count { margin-right: 1rem; color: #52606d; }
.flash { padding: .5rem 1rem; margin: .25rem 0; border-radius: 4px; }
.flash-success { background: #e3f9e5; }
.flash-error { background: #ffe3e3; }
.stale { padding: .5rem 1rem; background: #fff3c4; border-radius: 4px; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { text-align: left; padding: .5rem; }
tr.odd { background: #f5f7fa; }
.model-id { font-size: .8rem; color: #7b8794; }
.badge { padding: .1rem .5rem; border-radius: 999px; font-size: .85rem; }
.reason-cooldown { background: #fff3c4; }
.reason-suspended { background: #ffe3e3; }
.reason-default { background: #e4e7eb; }
.empty, .failed, .loading { padding: 3rem; text-align: center; }
</style>
</head>
<body>
<div class="header">
  <h1>{{.Title}}</h1>
  <div>
    <span class="count">{{.CountLabel}}</span>
    <form method="post" action="/refresh" style="display:inline">
      <button type="submit"{{if .Loading}} disabled{{end}}>{{if .Loading}}{{.LoadingLabel}}{{else}}{{.RefreshLabel}}{{end}}</button>
    </form>
  </div>
</div>
{{range .Flashes}}<div class="flash flash-{{.Severity}}">{{.Message}}</div>
{{end}}
{{if eq .View "loading"}}
<div class="loading">{{.LoadingLabel}}</div>
{{else if eq .View "failed"}}
<div class="failed"><h2>{{.FailedTitle}}</h2><p>{{.FailedDesc}}</p></div>
{{else if eq .View "empty"}}
<div class="empty"><h2>{{.EmptyTitle}}</h2><p>{{.EmptyDesc}}</p></div>
{{else}}
{{if .Stale}}<div class="stale">{{.StaleBanner}}</div>{{end}}
<table>
  <thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>
  {{range .Rows}}
    <tr class="{{.RowClass}}" data-key="{{.Key}}">
      <td><div class="model-name">{{.DisplayName}}</div><div class="model-id">{{.ModelID}}</div></td>
      <td><span class="provider">{{.Provider}}</span></td>
      <td>{{.ClientID}}</td>
      <td><span class="badge {{.ReasonClass}}">{{.ReasonLabel}}</span></td>
      <td>{{.Since}}</td>
      <td>
        <form method="post" action="/reset">
          <input type="hidden" name="model_id" value="{{.ModelID}}">
          <input type="hidden" name="client_id" value="{{.ClientID}}">
          <button type="submit"{{if .Resetting}} disabled{{end}}>{{$.ResetLabel}}</button>
        </form>
      </td>
    </tr>
  {{end}}
  </tbody>
</table>
{{end}}
</body>
</html>
`
