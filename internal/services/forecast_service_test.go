package services

import (
	"reflect"
	"testing"

	"agrolink/internal/testutil"
)

func TestGetForecastData(t *testing.T) {
	t.Run("top_crops_in_stored_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewForecastService(db, NewFirstNSelection(), 1)

		for _, name := range []string{"Rice", "Wheat", "Tomato", "Onion"} {
			testutil.CreateTestCropTypeNamed(t, db, name)
		}

		report, err := svc.GetForecastData()
		testutil.AssertNoError(t, err)

		if len(report.Datasets) != 3 {
			t.Fatalf("expected 3 datasets, got %d", len(report.Datasets))
		}
		wantOrder := []string{"Rice", "Wheat", "Tomato"}
		for i, want := range wantOrder {
			if report.Datasets[i].CropName != want {
				t.Errorf("dataset %d: expected %s, got %s", i, want, report.Datasets[i].CropName)
			}
		}
	})

	t.Run("known_curves", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewForecastService(db, NewFirstNSelection(), 1)

		for _, name := range []string{"Rice", "Wheat", "Tomato"} {
			testutil.CreateTestCropTypeNamed(t, db, name)
		}

		report, err := svc.GetForecastData()
		testutil.AssertNoError(t, err)

		series := make(map[string][]int, len(report.Datasets))
		for _, ds := range report.Datasets {
			series[ds.CropName] = ds.Data
		}

		if want := []int{50, 55, 52, 50, 48, 45}; !reflect.DeepEqual(series["Rice"], want) {
			t.Errorf("Rice series: expected %v, got %v", want, series["Rice"])
		}
		if want := []int{30, 45, 60, 70, 65, 55}; !reflect.DeepEqual(series["Tomato"], want) {
			t.Errorf("Tomato series: expected %v, got %v", want, series["Tomato"])
		}

		// Wheat has no authored curve: six random values in [20, 69].
		wheat := series["Wheat"]
		if len(wheat) != 6 {
			t.Fatalf("Wheat series: expected 6 values, got %d", len(wheat))
		}
		for i, v := range wheat {
			if v < 20 || v > 69 {
				t.Errorf("Wheat series[%d] = %d outside [20, 69]", i, v)
			}
		}
	})

	t.Run("labels_are_six_periods", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewForecastService(db, NewFirstNSelection(), 1)

		report, err := svc.GetForecastData()
		testutil.AssertNoError(t, err)

		want := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
		if !reflect.DeepEqual(report.Labels, want) {
			t.Errorf("expected labels %v, got %v", want, report.Labels)
		}
	})

	t.Run("demand_groups_are_static", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewForecastService(db, NewFirstNSelection(), 1)

		// No crops seeded at all; the tiers are metadata, not derived.
		report, err := svc.GetForecastData()
		testutil.AssertNoError(t, err)

		if want := []string{"Green Chillies", "Tomato", "Eggplant"}; !reflect.DeepEqual(report.DemandGroups.High, want) {
			t.Errorf("expected high demand group %v, got %v", want, report.DemandGroups.High)
		}
		if len(report.DemandGroups.Moderate) == 0 || len(report.DemandGroups.Low) == 0 {
			t.Error("expected non-empty moderate and low demand groups")
		}
	})

	t.Run("empty_store_is_valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewForecastService(db, NewFirstNSelection(), 1)

		report, err := svc.GetForecastData()
		testutil.AssertNoError(t, err)

		if len(report.Datasets) != 0 {
			t.Errorf("expected empty datasets for empty store, got %d", len(report.Datasets))
		}
	})

	t.Run("fewer_crops_than_top_count", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewForecastService(db, NewFirstNSelection(), 1)

		testutil.CreateTestCropTypeNamed(t, db, "Tomato")

		report, err := svc.GetForecastData()
		testutil.AssertNoError(t, err)

		if len(report.Datasets) != 1 {
			t.Fatalf("expected 1 dataset, got %d", len(report.Datasets))
		}
	})

	t.Run("deterministic_with_fixed_seed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		for _, name := range []string{"Rice", "Wheat", "Tomato"} {
			testutil.CreateTestCropTypeNamed(t, db, name)
		}

		first, err := NewForecastService(db, NewFirstNSelection(), 99).GetForecastData()
		testutil.AssertNoError(t, err)
		second, err := NewForecastService(db, NewFirstNSelection(), 99).GetForecastData()
		testutil.AssertNoError(t, err)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected identical reports for identical seeds:\nfirst:  %+v\nsecond: %+v", first, second)
		}
	})
}
