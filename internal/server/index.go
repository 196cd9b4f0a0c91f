package server

// indexHTML is the landing page template. It lists the five evaluative
// dimensions so users know what POST /analyze scores.
const indexHTML = `<!DOCTYPE html>
<html lang="pt-br">
<head>
  <meta charset="utf-8">
  <title>Manuscript Reviewer</title>
</head>
<body>
  <h1>Manuscript Reviewer</h1>
  <p>POST /analyze com {"text": "..."} para avaliar um manuscrito nas dimensões:</p>
  <ul>
{{- range .Dimensions}}
    <li>{{.}}</li>
{{- end}}
  </ul>
</body>
</html>
`
