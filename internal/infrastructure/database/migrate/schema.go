package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "icon", Type: field.TypeString, Default: ""},
		{Name: "color", Type: field.TypeString, Default: ""},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subject_name",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[1]},
			},
		},
	}
	// QuestionPapersColumns holds the columns for the "question_papers" table.
	QuestionPapersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime, Nullable: true},
		{Name: "pages", Type: field.TypeInt32, Nullable: true},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "file_url", Type: field.TypeString, Nullable: true},
		{Name: "year", Type: field.TypeInt32},
		{Name: "subject_id", Type: field.TypeString},
	}
	// QuestionPapersTable holds the schema information for the "question_papers" table.
	QuestionPapersTable = &schema.Table{
		Name:       "question_papers",
		Columns:    QuestionPapersColumns,
		PrimaryKey: []*schema.Column{QuestionPapersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_papers_subjects_papers",
				Columns:    []*schema.Column{QuestionPapersColumns[7]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "questionpaper_subject_id_year_date",
				Unique:  false,
				Columns: []*schema.Column{QuestionPapersColumns[7], QuestionPapersColumns[6], QuestionPapersColumns[2]},
			},
		},
	}
	// VideoLinksColumns holds the columns for the "video_links" table.
	VideoLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "duration", Type: field.TypeString, Nullable: true},
		{Name: "instructor", Type: field.TypeString, Nullable: true},
		{Name: "views", Type: field.TypeString, Nullable: true},
		{Name: "video_url", Type: field.TypeString, Nullable: true},
		{Name: "year", Type: field.TypeInt32},
		{Name: "subject_id", Type: field.TypeString},
	}
	// VideoLinksTable holds the schema information for the "video_links" table.
	VideoLinksTable = &schema.Table{
		Name:       "video_links",
		Columns:    VideoLinksColumns,
		PrimaryKey: []*schema.Column{VideoLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "video_links_subjects_videos",
				Columns:    []*schema.Column{VideoLinksColumns[7]},
				RefColumns: []*schema.Column{SubjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "videolink_subject_id_year_title",
				Unique:  false,
				Columns: []*schema.Column{VideoLinksColumns[7], VideoLinksColumns[6], VideoLinksColumns[1]},
			},
		},
	}
	// UserProgressColumns holds the columns for the "user_progress" table.
	UserProgressColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "paper_id", Type: field.TypeString},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// UserProgressTable holds the schema information for the "user_progress" table.
	UserProgressTable = &schema.Table{
		Name:       "user_progress",
		Columns:    UserProgressColumns,
		PrimaryKey: []*schema.Column{UserProgressColumns[0], UserProgressColumns[1]},
	}
	// VideoWatchHistoryColumns holds the columns for the "video_watch_history" table.
	VideoWatchHistoryColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString},
		{Name: "video_id", Type: field.TypeString},
		{Name: "watched_at", Type: field.TypeTime},
	}
	// VideoWatchHistoryTable holds the schema information for the "video_watch_history" table.
	VideoWatchHistoryTable = &schema.Table{
		Name:       "video_watch_history",
		Columns:    VideoWatchHistoryColumns,
		PrimaryKey: []*schema.Column{VideoWatchHistoryColumns[0], VideoWatchHistoryColumns[1]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SubjectsTable,
		QuestionPapersTable,
		VideoLinksTable,
		UserProgressTable,
		VideoWatchHistoryTable,
	}
)

func init() {
	QuestionPapersTable.ForeignKeys[0].RefTable = SubjectsTable
	VideoLinksTable.ForeignKeys[0].RefTable = SubjectsTable
}
