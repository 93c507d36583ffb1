package report

import "html/template"

var reportTmpl = template.Must(template.New("report").Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Lab Grade Report</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f8f9fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 20px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">

                    <!-- Header -->
                    <tr>
                        <td style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 30px; text-align: center;">
                            <h1 style="margin: 0; color: #ffffff; font-size: 28px; font-weight: 600;">Lab Grade Report</h1>
                            <p style="margin: 10px 0 0 0; color: #e9ecef; font-size: 16px;">{{.LabTitle}}</p>
                        </td>
                    </tr>

                    <!-- Greeting -->
                    <tr>
                        <td style="padding: 30px 30px 20px 30px;">
                            <p style="margin: 0; font-size: 16px; color: #495057;">Dear <strong>{{.StudentName}}</strong>,</p>
                            <p style="margin: 10px 0 0 0; font-size: 14px; color: #6c757d;">Your lab has been reviewed and graded. Here are your results:</p>
                        </td>
                    </tr>

                    <!-- Status Badge -->
                    <tr>
                        <td style="padding: 0 30px;">
                            <div style="background-color: {{.StatusBg}}; border-left: 4px solid {{.StatusColor}}; padding: 20px; border-radius: 8px; text-align: center;">
                                <div style="font-size: 48px; margin-bottom: 10px;">{{.StatusIcon}}</div>
                                <div style="font-size: 24px; font-weight: bold; color: {{.StatusColor}}; margin-bottom: 5px;">{{.Status}}</div>
                                <div style="font-size: 32px; font-weight: bold; color: #495057;">{{.ScorePercent}}%</div>
                                <div style="font-size: 14px; color: #6c757d; margin-top: 5px;">Passing Score: {{.PassingPercent}}%</div>
                            </div>
                        </td>
                    </tr>

                    <!-- Grade Details -->
                    <tr>
                        <td style="padding: 20px 30px;">
                            <table style="width: 100%; border-collapse: collapse; background-color: #f8f9fa; border-radius: 8px; overflow: hidden;">
                                <tr>
                                    <td style="padding: 12px 20px; border-bottom: 1px solid #dee2e6;">
                                        <strong style="color: #495057;">Attempt:</strong>
                                    </td>
                                    <td style="padding: 12px 20px; border-bottom: 1px solid #dee2e6; text-align: right; color: #6c757d;">
                                        {{.Attempt}}
                                    </td>
                                </tr>
                                <tr>
                                    <td style="padding: 12px 20px; border-bottom: 1px solid #dee2e6;">
                                        <strong style="color: #495057;">Re-do Required:</strong>
                                    </td>
                                    <td style="padding: 12px 20px; border-bottom: 1px solid #dee2e6; text-align: right; color: #6c757d;">
                                        {{.RedoLab}}
                                    </td>
                                </tr>
                                <tr>
                                    <td style="padding: 12px 20px;">
                                        <strong style="color: #495057;">Plagiarism Check:</strong>
                                    </td>
                                    <td style="padding: 12px 20px; text-align: right; color: #6c757d;">
                                        {{.Plagiarism}}
                                    </td>
                                </tr>
                            </table>
                        </td>
                    </tr>

                    <!-- Rubric Scores -->
                    <tr>
                        <td style="padding: 20px 30px;">
                            <h2 style="margin: 0 0 15px 0; color: #495057; font-size: 20px; border-bottom: 2px solid #667eea; padding-bottom: 10px;">📊 Rubric Scores</h2>
                            <table style="width: 100%; border-collapse: collapse; background-color: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; overflow: hidden;">
                                <thead>
                                    <tr style="background-color: #f8f9fa;">
                                        <th style="padding: 12px; text-align: left; color: #495057; font-weight: 600; border-bottom: 2px solid #dee2e6;">Criteria</th>
                                        <th style="padding: 12px; text-align: center; color: #495057; font-weight: 600; border-bottom: 2px solid #dee2e6;">Score</th>
                                        <th style="padding: 12px; text-align: left; color: #495057; font-weight: 600; border-bottom: 2px solid #dee2e6; width: 40%;">Progress</th>
                                    </tr>
                                </thead>
                                <tbody>
{{- if .Rubrics}}
{{- range .Rubrics}}
                                    <tr>
                                        <td style="padding: 12px; border-bottom: 1px solid #e9ecef; font-weight: 500;">{{.Name}}</td>
                                        <td style="padding: 12px; border-bottom: 1px solid #e9ecef; text-align: center; font-weight: bold; font-size: 18px;">{{.Score}}</td>
                                        <td style="padding: 12px; border-bottom: 1px solid #e9ecef;">
                                            <div style="background-color: #e9ecef; border-radius: 10px; height: 10px; overflow: hidden;">
                                                <div style="background-color: {{.BarColor}}; width: {{.BarWidth}}%; height: 100%;"></div>
                                            </div>
                                        </td>
                                    </tr>
{{- end}}
{{- else}}
                                    <tr><td colspan="3" style="padding: 12px; text-align: center; color: #6c757d;">No rubric scores available</td></tr>
{{- end}}
                                </tbody>
                            </table>
                        </td>
                    </tr>

                    <!-- Strengths -->
                    <tr>
                        <td style="padding: 20px 30px;">
                            <h2 style="margin: 0 0 15px 0; color: #495057; font-size: 20px; border-bottom: 2px solid #28a745; padding-bottom: 10px;">✨ Strengths</h2>
                            <div style="background-color: #d4edda; border-left: 4px solid #28a745; padding: 15px; border-radius: 8px; color: #155724; line-height: 1.6;">
                                {{.Strengths}}
                            </div>
                        </td>
                    </tr>

                    <!-- Areas for Improvement -->
                    <tr>
                        <td style="padding: 20px 30px;">
                            <h2 style="margin: 0 0 15px 0; color: #495057; font-size: 20px; border-bottom: 2px solid #ffc107; padding-bottom: 10px;">📈 Areas for Improvement</h2>
                            <div style="background-color: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; border-radius: 8px; color: #856404; line-height: 1.6;">
                                {{.Gaps}}
                            </div>
                        </td>
                    </tr>

                    <!-- Additional Remarks -->
                    <tr>
                        <td style="padding: 20px 30px;">
                            <h2 style="margin: 0 0 15px 0; color: #495057; font-size: 20px; border-bottom: 2px solid #17a2b8; padding-bottom: 10px;">💬 Additional Remarks</h2>
                            <div style="background-color: #d1ecf1; border-left: 4px solid #17a2b8; padding: 15px; border-radius: 8px; color: #0c5460; line-height: 1.6;">
                                {{.OtherRemarks}}
                            </div>
                        </td>
                    </tr>

                    <!-- Footer -->
                    <tr>
                        <td style="padding: 30px; background-color: #f8f9fa; text-align: center; border-top: 1px solid #dee2e6;">
                            <p style="margin: 0 0 10px 0; color: #6c757d; font-size: 14px;">If you have any questions about your grade, please reach out during office hours.</p>
                            <p style="margin: 0; color: #495057; font-weight: 600;">Best regards,<br>The Lab Review Team</p>
                        </td>
                    </tr>

                    <!-- Signature -->
                    <tr>
                        <td style="padding: 20px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); text-align: center;">
                            <p style="margin: 0; color: #ffffff; font-size: 12px;">© Lab Grading System</p>
                        </td>
                    </tr>

                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
