package playground

// indexHTML is the single-page playground frontend. It posts the
// textarea contents to /compile and shows the CSS or the diagnostic.
var indexHTML = []byte(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>cassis playground</title>
<style>
  body { font-family: ui-monospace, monospace; margin: 2rem; }
  .panes { display: flex; gap: 1rem; }
  textarea, pre { flex: 1; min-height: 24rem; padding: 0.75rem; font: inherit; }
  pre { background: #f6f6f6; border: 1px solid #ccc; margin: 0; white-space: pre-wrap; }
  pre.error { color: #b00020; }
</style>
</head>
<body>
<h1>cassis playground</h1>
<p>Nested S-expression style rules on the left, flat CSS on the right.</p>
<div class="panes">
<textarea id="src" spellcheck="false">(body
  color red
  (a text-decoration underline))</textarea>
<pre id="out"></pre>
</div>
<script>
const src = document.getElementById("src");
const out = document.getElementById("out");
async function compile() {
  const resp = await fetch("/compile", { method: "POST", body: src.value });
  const text = await resp.text();
  if (resp.ok) {
    out.textContent = text;
    out.classList.remove("error");
  } else {
    out.textContent = JSON.parse(text).error;
    out.classList.add("error");
  }
}
src.addEventListener("input", compile);
compile();
</script>
</body>
</html>
`)
