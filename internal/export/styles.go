package export

// exportCSS is embedded into every exported document so the file stays
// self-contained and viewable offline.
const exportCSS = `
        /* Base Styles */
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            background: #f8fafc;
        }

        .export-container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 2rem;
        }

        .export-header {
            text-align: center;
            margin-bottom: 3rem;
            padding: 2rem;
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }

        .export-header h1 {
            color: #1f2937;
            margin-bottom: 1rem;
        }

        .project-description {
            color: #6b7280;
            font-size: 1.1rem;
            margin-bottom: 0.5rem;
        }

        .export-info {
            color: #9ca3af;
            font-style: italic;
        }

        /* Object Preview Container */
        .object-preview {
            background: white;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            margin-bottom: 3rem;
            overflow: hidden;
        }

        .preview-header {
            padding: 1.5rem 2rem;
            border-bottom: 1px solid #e5e7eb;
            display: flex;
            justify-content: space-between;
            align-items: center;
            background: #f9fafb;
        }

        .preview-header h2 {
            color: #1f2937;
            display: flex;
            align-items: center;
            gap: 1rem;
        }

        .priority-badge {
            font-size: 0.75rem;
            padding: 0.25rem 0.5rem;
            border-radius: 4px;
            text-transform: uppercase;
            font-weight: 600;
        }

        .priority-now { background: #dc2626; color: white; }
        .priority-next { background: #ea580c; color: white; }
        .priority-later { background: #0891b2; color: white; }
        .priority-unassigned { background: #6b7280; color: white; }

        .completion-score {
            text-align: right;
            padding: 0.5rem 1rem;
            border-radius: 6px;
            font-weight: 600;
        }

        .grade-a { background: #dcfce7; color: #166534; }
        .grade-b { background: #dbeafe; color: #1e40af; }
        .grade-c { background: #fef3c7; color: #92400e; }
        .grade-d { background: #fed7aa; color: #9a3412; }
        .grade-f { background: #fecaca; color: #991b1b; }

        .score {
            display: block;
            font-size: 1.2rem;
        }

        .grade {
            font-size: 0.8rem;
            opacity: 0.8;
        }

        /* Warnings */
        .preview-warnings {
            padding: 1rem 2rem;
            background: #fffbeb;
            border-left: 4px solid #f59e0b;
        }

        .preview-warnings h4 {
            color: #92400e;
            margin-bottom: 0.5rem;
        }

        .preview-warnings ul {
            color: #78350f;
            margin-left: 1.5rem;
        }

        /* Preview Sections */
        .preview-tabs {
            padding: 2rem;
        }

        .preview-section {
            margin-bottom: 3rem;
        }

        .preview-section h3 {
            color: #374151;
            margin-bottom: 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid #e5e7eb;
        }

        /* Card Styles */
        .object-card {
            border: 1px solid #e5e7eb;
            border-radius: 8px;
            max-width: 350px;
            overflow: hidden;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
        }

        .card-header {
            padding: 1rem;
            border-bottom: 1px solid #e5e7eb;
        }

        .card-title {
            font-size: 1.2rem;
            font-weight: 600;
            color: #1f2937;
            margin-bottom: 0.5rem;
        }

        .card-subtitle {
            color: #6b7280;
            font-size: 0.9rem;
        }

        .card-body {
            padding: 1rem;
        }

        .card-attribute {
            display: flex;
            justify-content: space-between;
            margin-bottom: 0.5rem;
        }

        .attr-label {
            font-weight: 500;
            color: #374151;
        }

        .attr-value {
            color: #6b7280;
        }

        .card-action {
            margin-top: 1rem;
            padding-top: 1rem;
            border-top: 1px solid #e5e7eb;
        }

        /* Detail Styles */
        .object-detail {
            border: 1px solid #e5e7eb;
            border-radius: 8px;
            overflow: hidden;
        }

        .detail-header {
            padding: 1.5rem;
            background: #f9fafb;
            border-bottom: 1px solid #e5e7eb;
        }

        .detail-title {
            color: #1f2937;
            margin-bottom: 0.5rem;
        }

        .detail-definition {
            color: #6b7280;
        }

        .detail-section {
            padding: 1.5rem;
            border-bottom: 1px solid #e5e7eb;
        }

        .detail-section:last-child {
            border-bottom: none;
        }

        .detail-section h3 {
            color: #374151;
            margin-bottom: 1rem;
        }

        .detail-attribute {
            margin-bottom: 1rem;
            padding: 0.75rem;
            background: #f9fafb;
            border-radius: 6px;
        }

        .attr-header {
            display: flex;
            align-items: center;
            gap: 0.5rem;
            margin-bottom: 0.25rem;
        }

        .attr-name {
            font-weight: 600;
            color: #1f2937;
        }

        .attr-type {
            color: #6b7280;
            font-size: 0.8rem;
        }

        .core-badge, .required-badge {
            font-size: 0.6rem;
            padding: 0.2rem 0.4rem;
            border-radius: 3px;
            text-transform: uppercase;
            font-weight: 600;
        }

        .core-badge {
            background: #dbeafe;
            color: #1e40af;
        }

        .required-badge {
            background: #fecaca;
            color: #991b1b;
        }

        .detail-action {
            display: flex;
            align-items: center;
            gap: 0.75rem;
            padding: 0.75rem;
            margin-bottom: 0.5rem;
            background: #f9fafb;
            border-radius: 6px;
        }

        .detail-action.primary {
            background: #eff6ff;
            border: 1px solid #dbeafe;
        }

        .crud-badge {
            font-size: 0.7rem;
            padding: 0.3rem 0.6rem;
            border-radius: 4px;
            text-transform: uppercase;
            font-weight: 600;
            color: white;
        }

        .crud-create { background: #059669; }
        .crud-read { background: #0891b2; }
        .crud-update { background: #ea580c; }
        .crud-delete { background: #dc2626; }
        .crud-none { background: #6b7280; }

        /* List Styles */
        .object-list {
            overflow-x: auto;
        }

        .list-table {
            width: 100%;
            border-collapse: collapse;
            background: white;
            border: 1px solid #e5e7eb;
            border-radius: 8px;
            overflow: hidden;
        }

        .list-table th {
            background: #f9fafb;
            padding: 0.75rem;
            text-align: left;
            font-weight: 600;
            color: #374151;
            border-bottom: 1px solid #e5e7eb;
        }

        .list-table td {
            padding: 0.75rem;
            border-bottom: 1px solid #f3f4f6;
            color: #6b7280;
        }

        .list-table tr:last-child td {
            border-bottom: none;
        }

        /* Landing Styles */
        .object-landing {
            border: 1px solid #e5e7eb;
            border-radius: 8px;
            overflow: hidden;
        }

        .landing-header {
            padding: 2rem;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
        }

        .landing-title {
            font-size: 2rem;
            margin-bottom: 0.5rem;
        }

        .landing-description {
            opacity: 0.9;
            font-size: 1.1rem;
        }

        .landing-summary, .landing-actions {
            padding: 1.5rem 2rem;
        }

        .landing-summary {
            background: #f9fafb;
            border-bottom: 1px solid #e5e7eb;
        }

        .landing-attributes {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 1rem;
            margin-top: 1rem;
        }

        .landing-attribute {
            display: flex;
            flex-direction: column;
            gap: 0.25rem;
        }

        .action-groups {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 1.5rem;
            margin-top: 1rem;
        }

        .action-group {
            border: 1px solid #e5e7eb;
            border-radius: 6px;
            padding: 1rem;
            background: #f9fafb;
        }

        .group-title {
            color: #374151;
            font-size: 1rem;
            margin-bottom: 0.75rem;
        }

        .group-actions {
            display: flex;
            flex-direction: column;
            gap: 0.5rem;
        }

        .landing-action {
            padding: 0.75rem 1rem;
            border: 1px solid #d1d5db;
            border-radius: 6px;
            background: white;
            color: #374151;
            text-align: left;
            cursor: pointer;
            transition: all 0.2s;
        }

        .landing-action:hover {
            background: #f3f4f6;
            border-color: #9ca3af;
        }

        .landing-action.primary {
            background: #3b82f6;
            color: white;
            border-color: #2563eb;
        }

        .landing-action.primary:hover {
            background: #2563eb;
        }

        /* Button Styles */
        .btn {
            padding: 0.5rem 1rem;
            border: none;
            border-radius: 6px;
            font-weight: 500;
            cursor: pointer;
            text-decoration: none;
            display: inline-block;
            transition: all 0.2s;
        }

        .btn-primary {
            background: #3b82f6;
            color: white;
        }

        .btn-primary:hover {
            background: #2563eb;
        }

        /* Footer */
        .export-footer {
            text-align: center;
            padding: 2rem;
            color: #6b7280;
            border-top: 1px solid #e5e7eb;
            margin-top: 2rem;
        }

        /* Error Styles */
        .preview-error {
            background: #fef2f2;
            border: 1px solid #fca5a5;
            border-radius: 8px;
            padding: 1.5rem;
            margin-bottom: 2rem;
        }

        .preview-error h2 {
            color: #991b1b;
            margin-bottom: 0.5rem;
        }

        .error-message {
            color: #7f1d1d;
        }

        /* Responsive */
        @media (max-width: 768px) {
            .export-container {
                padding: 1rem;
            }

            .preview-header {
                flex-direction: column;
                align-items: flex-start;
                gap: 1rem;
            }

            .landing-attributes {
                grid-template-columns: 1fr;
            }

            .action-groups {
                grid-template-columns: 1fr;
            }
        }
`
