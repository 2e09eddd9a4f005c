package gemini

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	"github.com/SscSPs/club_manager_app/internal/utils"
	"github.com/SscSPs/club_manager_app/internal/utils/accounting"
)

const allPaidLine = "Đã đóng đủ hết, đội rất ngoan"

// attendanceLine is serialised into the prompt as is.
type attendanceLine struct {
	Name          string `json:"name"`
	MatchesPlayed int    `json:"matchesPlayed"`
	MissedCount   int    `json:"missedCount"`
	Warning       bool   `json:"warning"`
}

type promptData struct {
	TotalIncome      string
	TotalExpense     string
	Balance          string
	Unpaid           string
	CompletedMatches int
	Attendance       string
}

var promptTemplate = template.Must(template.New("narrative").Parse(`
Bạn là quản lý tài chính và chiến lược vui tính của đội bóng JC United.
Dưới đây là dữ liệu hiện tại của đội:

TÀI CHÍNH:
- Tổng thu: {{.TotalIncome}}
- Tổng chi: {{.TotalExpense}}
- Quỹ hiện tại: {{.Balance}}
- CHƯA đóng quỹ tháng: {{.Unpaid}}.

CHUYÊN CẦN (Số trận đã đá trong tổng số {{.CompletedMatches}} trận gần đây):
{{.Attendance}}

LƯU Ý ĐẶC BIỆT: Những người có 'warning: true' là đã vắng QUÁ 3 TRẬN trong tháng này.

Hãy viết báo cáo ngắn gọn (Markdown), giọng văn hài hước, châm biếm kiểu "bóng đá phủi":
1. Tình hình túi tiền: Quỹ đang "ấm" hay đang "thở oxy"?
2. Chuyên gia "bào" sân: Khen ngợi những ông chăm đi đá nhất.
3. CẢNH BÁO "MẤT TÍCH": Cà khịa cực mạnh những ông có 'warning: true' (vắng quá 3 trận). Yêu cầu giải trình hoặc nộp "phạt chuyên cần".
4. Nhắc nhở nợ quỹ: Liệt kê danh sách nợ quỹ và nhắc nhở quyết liệt nhưng vui vẻ.
5. Chốt hạ bằng một câu slogan khích lệ anh em đi đá đông đủ.
`))

// BuildPrompt renders the narrative request for a period.
func BuildPrompt(input domain.NarrativeInput) (string, error) {
	totals := accounting.CalculateTotals(input.Transactions)

	completed := make([]domain.Match, 0)
	for _, m := range input.Matches {
		if m.IsCompleted() {
			completed = append(completed, m)
		}
	}

	unpaid := make([]string, 0)
	attendance := make([]attendanceLine, 0)
	for _, member := range domain.ActiveMembers(input.Members) {
		if !member.MonthlyFeePaid {
			unpaid = append(unpaid, member.Name)
		}
		played := 0
		for _, m := range completed {
			if m.HasParticipant(member.ID) {
				played++
			}
		}
		stat := domain.MemberMonthlyStat{MatchesPlayed: played, MissedCount: len(completed) - played}
		attendance = append(attendance, attendanceLine{
			Name:          member.Name,
			MatchesPlayed: stat.MatchesPlayed,
			MissedCount:   stat.MissedCount,
			Warning:       stat.HasAttendanceWarning(),
		})
	}

	attendanceJSON, err := json.MarshalIndent(attendance, "", "  ")
	if err != nil {
		return "", err
	}

	unpaidLine := strings.Join(unpaid, ", ")
	if unpaidLine == "" {
		unpaidLine = allPaidLine
	}

	var buf bytes.Buffer
	err = promptTemplate.Execute(&buf, promptData{
		TotalIncome:      utils.FormatVNDWithSymbol(totals.Income),
		TotalExpense:     utils.FormatVNDWithSymbol(totals.Expense),
		Balance:          utils.FormatVNDWithSymbol(totals.Balance),
		Unpaid:           unpaidLine,
		CompletedMatches: len(completed),
		Attendance:       string(attendanceJSON),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
