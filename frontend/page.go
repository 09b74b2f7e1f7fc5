package frontend

import "net/http"

func (b *Bridge) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>Récupération des avis de CFE</title>
<style>
body { font-family: sans-serif; margin: 2em; max-width: 40em; }
#captcha { display: none; background: #fff3cd; border: 1px solid #ffc107; padding: 1em; margin: 1em 0; }
#state { font-weight: bold; margin: 1em 0; }
progress { width: 100%; height: 1.5em; }
table { border-collapse: collapse; margin-top: 1em; }
td, th { border: 1px solid #ccc; padding: 0.3em 0.8em; }
button { padding: 0.5em 2em; margin-right: 1em; }
</style>
</head>
<body>
<h1>Récupération des avis de CFE</h1>
<div id="state">Connexion...</div>
<div id="captcha"></div>
<progress id="bar" value="0" max="1"></progress>
<table>
<tr><th>Total</th><th>Traités</th><th>Réussis</th><th>Échoués</th><th>Restants</th></tr>
<tr><td id="total">0</td><td id="processed">0</td><td id="succeeded">0</td><td id="failed">0</td><td id="remaining">0</td></tr>
</table>
<p>
<button id="start">Lancer</button>
<button id="stop">Arrêter</button>
</p>
<script>
var ws = new WebSocket("ws://" + location.host + "/ws");
ws.onopen = function() { document.getElementById("state").textContent = "Prêt."; };
ws.onclose = function() { document.getElementById("state").textContent = "Déconnecté."; };
ws.onmessage = function(ev) {
  var msg = JSON.parse(ev.data);
  if (msg.type === "state") {
    document.getElementById("state").textContent = msg.payload.label;
    document.getElementById("captcha").style.display = "none";
  } else if (msg.type === "captcha") {
    var box = document.getElementById("captcha");
    box.textContent = msg.payload.message;
    box.style.display = "block";
  } else if (msg.type === "progress") {
    var p = msg.payload;
    document.getElementById("total").textContent = p.total;
    document.getElementById("processed").textContent = p.processed;
    document.getElementById("succeeded").textContent = p.succeeded;
    document.getElementById("failed").textContent = p.failed;
    document.getElementById("remaining").textContent = p.remaining;
    var bar = document.getElementById("bar");
    bar.max = p.total || 1;
    bar.value = p.processed;
  }
};
document.getElementById("start").onclick = function() { ws.send(JSON.stringify({type: "start"})); };
document.getElementById("stop").onclick = function() { ws.send(JSON.stringify({type: "stop"})); };
</script>
</body>
</html>
`
