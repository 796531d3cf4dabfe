package server

const indexHTML = `<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>FPGA Build Time Estimator</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:24px;max-width:760px}
h1,h2{margin:0 0 12px}
.grid{display:grid;grid-template-columns:1fr 1fr;gap:16px}
label{display:block;font-size:14px;font-weight:500;margin-bottom:4px}
select,input{width:100%;padding:6px;box-sizing:border-box}
.card{border:1px solid #ddd;border-radius:8px;padding:16px;margin-top:20px}
.error{background:#fee;border:1px solid #e99;padding:8px;border-radius:6px;margin-bottom:12px}
.small{color:#555;font-size:13px}
</style>

<h1>FPGA Build Time Estimator</h1>

{{if .Error}}<div class="error">{{.Error}}</div>{{end}}

<form method="get" action="/">
<div class="grid">
{{range .Fields}}
<div>
<label for="{{.Name}}">{{.Label}}</label>
{{if .Options}}
{{$v := .Value}}
<select id="{{.Name}}" name="{{.Name}}" onchange="this.form.submit()">
{{range .Options}}<option value="{{.}}"{{if eq . $v}} selected{{end}}>{{.}}</option>
{{end}}</select>
{{else}}
<input id="{{.Name}}" name="{{.Name}}" type="number" min="0" value="{{.Value}}" placeholder="{{.Label}}" onchange="this.form.submit()">
{{end}}
</div>
{{end}}
</div>
<noscript><p><button type="submit">Estimate</button></p></noscript>
</form>

<div class="card">
<h2>Estimated Build Times</h2>
{{range .Stages}}<div>{{.Name}}: {{.Minutes}}</div>
{{end}}<div><strong>Total: {{.Total}}</strong></div>
<p class="small">
base {{printf "%.3f" .Factors.Base}} &times; cpu {{printf "%.2f" .Factors.CPU}}
&times; opt {{printf "%.2f" .Factors.Opt}} &times; toolchain {{printf "%.2f" .Factors.Toolchain}}
&middot; <a href="{{.Link}}">link to this estimate</a>
</p>
</div>
</html>`
