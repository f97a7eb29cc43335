package rest

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const boardWidth = 3

type templates struct {
	page *template.Template
}

type pageData struct {
	State    entity.GameState
	Rows     [][]entity.CellView
	Finished bool
	Error    string
}

func loadTemplates() *templates {
	return &templates{
		page: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

func (that *templates) renderPage(state entity.GameState, errMsg string) ([]byte, error) {
	rows := make([][]entity.CellView, 0, boardWidth)
	for i := 0; i < len(state.Cells); i += boardWidth {
		rows = append(rows, state.Cells[i:i+boardWidth])
	}

	data := pageData{
		State:    state,
		Rows:     rows,
		Finished: state.Result.HasWinner() || state.IsDraw,
		Error:    errMsg,
	}

	var buf bytes.Buffer
	if err := that.page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute page template: %w", err)
	}

	return buf.Bytes(), nil
}

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Tic-Tac-Toe</title>
<style>
  body { font-family: sans-serif; display: flex; gap: 2rem; padding: 2rem; }
  .board { display: grid; grid-template-columns: repeat(3, 4rem); gap: .25rem; }
  .board form { margin: 0; }
  .square { width: 4rem; height: 4rem; font-size: 2rem; }
  .square.winning { background: #9be29b; }
  .status { font-weight: bold; margin-bottom: .5rem; }
  .alert { color: #b00020; }
  .moves button.current { font-weight: bold; }
  table.score td, table.score th { padding: .25rem .75rem; text-align: center; }
</style>
</head>
<body>
<main>
  <div class="status" id="status">{{.State.Status}}</div>
  {{if .Error}}<div class="alert" id="error">{{.Error}}</div>{{end}}
  <div class="board" id="board">
  {{- range .Rows}}{{range .}}
    <form method="post" action="/cells/{{.Index}}">
      <button type="submit" class="square{{if .Winning}} winning{{end}}" data-cell="{{.Index}}"{{if or .Mark $.Finished}} disabled{{end}}>{{.Mark}}</button>
    </form>
  {{- end}}{{end}}
  </div>
  <form method="post" action="/game/new"><button type="submit">New game</button></form>
</main>
<aside>
  <ol class="moves" id="moves" start="0">
  {{- range .State.History}}
    <li><form method="post" action="/moves/{{.Step}}"><button type="submit"{{if .Current}} class="current"{{end}}>{{.Label}}</button></form></li>
  {{- end}}
  </ol>
  <table class="score" id="score">
    <tr><th>X</th><th>O</th><th>Draws</th></tr>
    <tr><td>{{.State.Score.X}}</td><td>{{.State.Score.O}}</td><td>{{.State.Score.Draws}}</td></tr>
  </table>
  <form method="post" action="/score/reset"><button type="submit">Reset scoreboard</button></form>
</aside>
</body>
</html>
`
