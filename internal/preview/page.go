package preview

// Served at / so a browser can drive the width reporting loop without any
// build tooling. The page opens /ws, reports the gallery pane width after
// resizes settle, and swaps in the class map and CSS from each reply.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>boxkit preview</title>
<style>
  body { margin: 0; font: 14px/1.5 system-ui, sans-serif; color: #1f2430; background: #f6f7f9; }
  header { display: flex; align-items: baseline; gap: 12px; padding: 14px 20px; background: #1f2430; color: #fff; }
  header h1 { font-size: 16px; margin: 0; font-weight: 600; }
  #status { font-size: 12px; color: #9aa4b5; }
  #width { margin-left: auto; font-variant-numeric: tabular-nums; color: #9aa4b5; }
  main { padding: 20px; }
  .card { background: #fff; border: 1px solid #e3e6eb; border-radius: 6px; margin-bottom: 16px; }
  .card h2 { font-size: 12px; letter-spacing: .05em; text-transform: uppercase; color: #6b7383; margin: 0; padding: 10px 14px; border-bottom: 1px solid #e3e6eb; }
  .card code { float: right; text-transform: none; font-size: 11px; color: #9aa4b5; }
  .demo { padding: 14px; }
  .chip { background: #dbe4ff; border-radius: 4px; min-height: 40px; min-width: 60px; }
</style>
</head>
<body>
<header><h1>boxkit preview</h1><span id="status">connecting</span><span id="width"></span></header>
<main id="gallery"></main>
<style id="sheet"></style>
<script>
(function () {
  var gallery = document.getElementById('gallery');
  var sheet = document.getElementById('sheet');
  var status = document.getElementById('status');
  var widthLabel = document.getElementById('width');
  var ws = new WebSocket('ws://' + location.host + '/ws');

  function report() {
    if (ws.readyState !== WebSocket.OPEN) return;
    ws.send(JSON.stringify({ width: Math.floor(gallery.getBoundingClientRect().width) }));
  }

  function card(name) {
    var el = document.getElementById('card-' + name);
    if (el) return el;
    el = document.createElement('section');
    el.className = 'card';
    el.id = 'card-' + name;
    el.innerHTML = '<h2>' + name + ' <code></code></h2><div class="demo"><div class="target">' +
      '<div class="chip"></div><div class="chip"></div><div class="chip"></div></div></div>';
    gallery.appendChild(el);
    return el;
  }

  function apply(msg) {
    sheet.textContent = msg.css;
    widthLabel.textContent = msg.width + 'px';
    Object.keys(msg.classes).sort().forEach(function (name) {
      var el = card(name);
      el.querySelector('.target').className = 'target ' + msg.classes[name];
      el.querySelector('code').textContent = msg.classes[name];
    });
  }

  ws.onopen = function () { status.textContent = 'live'; report(); };
  ws.onclose = function () { status.textContent = 'disconnected'; };
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === 'reload') { report(); return; }
    if (msg.type === 'styles') { apply(msg); }
  };

  var pending;
  window.addEventListener('resize', function () {
    clearTimeout(pending);
    pending = setTimeout(report, 100);
  });
})();
</script>
</body>
</html>`
