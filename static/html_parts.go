package static

// Страница собирается так: Part1, график, Part2, логи, Part3.
var (
	style = `
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 55%;
				padding: 10px;
				box-sizing: border-box;
				overflow-y: auto;
			}

			#right-container {
				width: 45%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				font-size: 12px;
			}

			form {
				display: grid;
				grid-template-columns: max-content 160px;
				gap: 6px 12px;
				align-items: center;
			}

			input[type="number"],
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				border-radius: 4px;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			input[type="checkbox"] {
				accent-color: #757575;
				justify-self: start;
			}

			.legend span {
				margin-right: 14px;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
		</style>`

	form = `
				<h1>Диаграмма Вороного и триангуляция Делоне</h1>
				<form id="diagram-form" method="POST">
					<label for="width">Ширина (W):</label>
					<input type="number" id="width" name="width" value="1000" min="100" max="5000">
					<label for="height">Высота (H):</label>
					<input type="number" id="height" name="height" value="1000" min="100" max="5000">
					<label for="stations">Количество станций (n):</label>
					<input type="number" id="stations" name="stations" value="12" min="0" max="500">
					<label for="relax">Итерации Ллойда:</label>
					<input type="number" id="relax" name="relax" value="0" min="0" max="50">
					<label for="random">Случайные станции:</label>
					<input type="checkbox" id="random" name="random" value="true">
					<span></span>
					<input type="submit" value="Построить">
				</form>
				<p class="legend">
					<span style="color: #5470c6">границы регионов</span>
					<span style="color: #91cc75">рёбра Делоне</span>
					<span style="color: #ee6666">выпуклая оболочка</span>
				</p>`

	Part1 = `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<title>Диаграмма Вороного</title>` + style + `
	</head>
	<body>
		<div id="container">
			<div id="left-container">` + form

	// StatsFormat принимает число станций, рёбер, вершин и итераций Ллойда
	StatsFormat = `
				<p>Станций: %d, рёбер: %d, вершин: %d, итераций Ллойда: %d</p>`

	Part2 = `
			</div>
			<div id="right-container">
				<h1>Логи</h1>
				<div id="logs">`

	Part3 = `
				</div>
			</div>
		</div>

		<script>
			document.getElementById('diagram-form').addEventListener('submit', function (e) {
				e.preventDefault();
				const params = new URLSearchParams(new FormData(this)).toString();

				fetch('/', {
					method: 'POST',
					body: params,
					headers: {
						'Content-Type': 'application/x-www-form-urlencoded'
					}
				})
				.then(response => response.text().then(html => {
					if (!response.ok) {
						throw new Error(html);
					}
					return html;
				}))
				.then(html => {
					document.open();
					document.write(html);
					document.close();
				})
				.catch(error => {
					console.error('Ошибка:', error);
					alert(error.message);
				});
			});
		</script>
	</body>
	</html>
	`
)
