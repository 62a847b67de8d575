package summarizer

import "fmt"

const systemPrompt = "あなたは会議の議事録を作成するアシスタントです。"

// promptTemplate instructs the model to emit the numbered sections the
// parser relies on: "0." basic info with four fixed-order labeled lines,
// "1." agenda, "2." key statements, "3." decisions.
const promptTemplate = "以下の会議の文字起こしを要約してください。以下のフォーマットで出力してください:\n" +
	"0. 会議基本情報（必ず次の4項目をこの順で出力）:\n" +
	"会議名: ...\n" +
	"日時: ...\n" +
	"参加者: ...\n" +
	"場所/URL: ...\n" +
	"1. 議題の説明: 会議の目的や概要\n" +
	"2. 主な発言: 重要なやり取りの要約（数値を伴う発言を優先、最低8件以上列挙）\n" +
	"3. 決定事項: 確定したタスクや合意点\n" +
	"\n出力ルール（2. 主な発言）:\n" +
	"- 最低8件、可能であれば10件以上の発言を箇条書きで列挙してください。\n" +
	"- 以下のカテゴリをすべて網羅するよう発言を抽出してください:\n" +
	"  【数値報告】件数・金額・割合・日付・時刻・期限・回数などの数値を含む発言（最優先）\n" +
	"  【問題・課題】現状の問題点や懸念として挙げられた発言\n" +
	"  【提案・アイデア】新しい提案、改善案、アイデアに関する発言\n" +
	"  【質疑応答】質問とその回答のやり取り\n" +
	"  【背景・現状説明】状況説明や前提共有に関する重要な発言\n" +
	"  【依頼・指示】誰かへの依頼・指示・アクション要求\n" +
	"- 各発言の先頭に上記カテゴリ名を【】で付けてください（例: 【数値報告】売上は前月比15%%増）。\n" +
	"- 数値は原文のまま残してください（例: 3件、15%%、2026/03/10、30分）。\n" +
	"\n会議情報:\n%s" +
	"\n参考資料（PowerPoint）の内容:\n%s" +
	"\n文字起こし:\n%s"

// buildPrompt embeds the transcript and the optional freeform inputs into
// the summary prompt. Absent inputs are rendered as explicit placeholders
// rather than empty strings.
func buildPrompt(transcript, meetingInfo, referenceText string) string {
	if meetingInfo == "" {
		meetingInfo = "（入力なし）"
	}
	if referenceText == "" {
		referenceText = "（アップロードなし）"
	}
	return fmt.Sprintf(promptTemplate, meetingInfo, referenceText, transcript)
}
