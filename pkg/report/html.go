package report

import (
	"bytes"
	"html/template"
	"io"
)

type htmlView struct {
	Rows  []Row
	Total float64
}

// HTML writes a standalone report page.
func HTML(w io.Writer, rows []Row) error {
	var sum float64
	for _, r := range rows {
		sum += float64(r.Result.Total())
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, htmlView{Rows: rows, Total: sum}); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>FPGA Build Time Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
.small{color:#555}
.badge{display:inline-block;background:#eef;border:1px solid #ccd;padding:2px 6px;border-radius:6px;margin-right:6px;}
</style>

<h1>FPGA Build Time Report</h1>

<p class="small">
Designs: {{len .Rows}} &nbsp;|&nbsp;
Sum of flows: {{printf "%.1f" .Total}} min
</p>

{{range .Rows}}
<h2>{{if .Name}}{{.Name}}{{else}}design{{end}}</h2>
<p>
<span class="badge">{{.Input.Toolchain}}</span>
<span class="badge">{{.Input.CPU}}</span>
<span class="badge">{{.Input.Opt}}</span>
LUTs {{.Input.LUTs.Humanized}} &middot; FFs {{.Input.FFs.Humanized}} &middot; DSPs {{.Input.DSPs.Humanized}}
</p>
<ul>
{{range .Result.Stages}}<li>{{.Name}}: {{.Minutes}}</li>
{{end}}<li>Total: {{.Result.Total}}</li>
</ul>
<p class="small">
base {{printf "%.3f" .Factors.Base}} &times; cpu {{printf "%.2f" .Factors.CPU}}
&times; opt {{printf "%.2f" .Factors.Opt}} &times; toolchain {{printf "%.2f" .Factors.Toolchain}}
</p>
{{end}}

{{if .Rows}}
<h2>Summary</h2>
<table>
<thead>
<tr>
<th>design</th><th>toolchain</th><th>cpu</th><th>opt</th>
<th>LUTs</th><th>FFs</th><th>DSPs</th>
<th>synthesis (min)</th><th>implementation (min)</th><th>bitstream (min)</th><th>total (min)</th>
</tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{.Name}}</td>
<td>{{.Input.Toolchain}}</td>
<td>{{.Input.CPU}}</td>
<td>{{.Input.Opt}}</td>
<td>{{.Input.LUTs.Humanized}}</td>
<td>{{.Input.FFs.Humanized}}</td>
<td>{{.Input.DSPs.Humanized}}</td>
<td>{{printf "%.1f" .Result.Synthesis}}</td>
<td>{{printf "%.1f" .Result.Implementation}}</td>
<td>{{printf "%.1f" .Result.Bitstream}}</td>
<td>{{printf "%.1f" .Result.Total}}</td>
</tr>
{{end}}
</tbody>
</table>
{{end}}
</html>`))
