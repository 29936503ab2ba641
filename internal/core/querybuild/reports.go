package querybuild

// Templates for the per report queries
// {{cohort}} opens the WITH list with user_cohorts when a date range is set
// {{join}} restricts the aliased events (e) to cohort users the same way
// metric events are never date limited except the rewarded subset

const rewardedAdsSQL = `
WITH {{cohort}}all_events AS (
    SELECT e.user_pseudo_id AS user_pseudo_id
    FROM {{table}} e{{join}}
    WHERE 1 = 1{{filters}}
  ),
  total_user_count AS (
    SELECT uniqExact(user_pseudo_id) AS total_users
    FROM all_events
  ),
  rewarded AS (
    SELECT e.event_name AS event_name, e.user_pseudo_id AS user_pseudo_id
    FROM {{table}} e{{join}}
    WHERE event_name LIKE 'RV_Watched_%'{{date}}{{filters}}
  )
SELECT
  r.event_name AS event_name,
  count() AS total_count,
  uniqExact(r.user_pseudo_id) AS unique_users,
  round(count() / uniqExact(r.user_pseudo_id), 2) AS avg_per_user,
  tuc.total_users AS total_users,
  round(count() / nullIf(tuc.total_users, 0), 2) AS avg_per_all_users
FROM rewarded r
CROSS JOIN total_user_count tuc
GROUP BY r.event_name, tuc.total_users
ORDER BY total_count DESC, event_name ASC
`

const levelAnalysisSQL = `
WITH {{cohort}}level_events AS (
    SELECT
      e.user_pseudo_id AS user_pseudo_id,
      e.event_name AS event_name,
      assumeNotNull({{level}}) AS level,
      {{duration}} AS duration_seconds
    FROM {{table}} e{{join}}
    WHERE event_name IN ('level_complete', 'level_fail'){{filters}}
      AND {{level}} IS NOT NULL
  ),
  level_stats AS (
    SELECT
      level,
      countIf(event_name = 'level_complete') AS completions,
      countIf(event_name = 'level_fail') AS failures,
      count() AS total_attempts,
      uniqExact(user_pseudo_id) AS unique_users,
      avgOrNullIf(duration_seconds, event_name = 'level_complete') AS avg_complete,
      avgOrNullIf(duration_seconds, event_name = 'level_fail') AS avg_fail
    FROM level_events
    GROUP BY level
  ),
  user_attempts AS (
    SELECT
      user_pseudo_id,
      level,
      count() AS attempts,
      max(event_name = 'level_complete') AS completed
    FROM level_events
    GROUP BY user_pseudo_id, level
  ),
  avg_attempts AS (
    SELECT level, round(avgOrNullIf(attempts, completed = 1), 2) AS attempts_to_complete
    FROM user_attempts
    GROUP BY level
  )
SELECT
  ls.level AS level,
  ls.completions AS completions,
  ls.failures AS failures,
  ls.total_attempts AS total_attempts,
  ls.unique_users AS unique_users,
  round(ls.completions * 100.0 / nullIf(ls.total_attempts, 0), 2) AS completion_rate,
  round(ls.avg_complete, 2) AS avg_duration_complete,
  round(ls.avg_fail, 2) AS avg_duration_fail,
  aa.attempts_to_complete AS avg_attempts_to_complete
FROM level_stats ls
LEFT JOIN avg_attempts aa ON ls.level = aa.level
ORDER BY level ASC
LIMIT {{limit}}
`

// a boost counts for an attempt when the same user watched a silver coin ad
// for the same level no later than the outcome. An unmatched join row has an
// empty user id with or without join_use_nulls
const silverCoinBoostSQL = `
WITH {{cohort}}level_outcomes AS (
    SELECT
      e.user_pseudo_id AS user_pseudo_id,
      e.event_name AS event_name,
      e.event_ts AS event_ts,
      assumeNotNull({{level}}) AS level
    FROM {{table}} e{{join}}
    WHERE event_name IN ('level_complete', 'level_fail'){{filters}}
      AND {{level}} IS NOT NULL
  ),
  silver_coin_events AS (
    SELECT
      e.user_pseudo_id AS user_pseudo_id,
      e.event_ts AS event_ts,
      assumeNotNull({{level}}) AS level
    FROM {{table}} e{{join}}
    WHERE event_name IN ('RV_Watched_Silver_Coin_Before_Game', 'RV_Watched_Silver_Coin_In_Game'){{filters}}
      AND {{level}} IS NOT NULL
  ),
  outcome_boost AS (
    SELECT
      lo.user_pseudo_id AS user_pseudo_id,
      lo.level AS level,
      lo.event_name AS event_name,
      lo.event_ts AS event_ts,
      max(if(sc.user_pseudo_id != '' AND sc.event_ts <= lo.event_ts, 1, 0)) AS boosted
    FROM level_outcomes lo
    LEFT JOIN silver_coin_events sc ON lo.user_pseudo_id = sc.user_pseudo_id AND lo.level = sc.level
    GROUP BY lo.user_pseudo_id, lo.level, lo.event_name, lo.event_ts
  ),
  level_with_boost AS (
    SELECT DISTINCT user_pseudo_id, level, event_name, boosted AS had_silver_boost
    FROM outcome_boost
  )
SELECT
  level,
  count() AS total_attempts,
  countIf(had_silver_boost = 1) AS attempts_with_boost,
  countIf(event_name = 'level_complete' AND had_silver_boost = 1) AS completions_with_boost,
  countIf(event_name = 'level_complete' AND had_silver_boost = 0) AS completions_without_boost,
  round(countIf(had_silver_boost = 1) * 100.0 / count(), 2) AS boost_usage_rate,
  round(countIf(event_name = 'level_complete' AND had_silver_boost = 1) * 100.0
    / nullIf(countIf(had_silver_boost = 1), 0), 2) AS completion_rate_with_boost,
  round(countIf(event_name = 'level_complete' AND had_silver_boost = 0) * 100.0
    / nullIf(countIf(had_silver_boost = 0), 0), 2) AS completion_rate_without_boost
FROM level_with_boost
GROUP BY level
ORDER BY level ASC
LIMIT {{limit}}
`

// two grains in one result set, told apart by result_type
const unitLoadoutSQL = `
WITH {{cohort}}loadout_events AS (
    SELECT e.user_pseudo_id AS user_pseudo_id, assumeNotNull({{unit_names}}) AS unit_names
    FROM {{table}} e{{join}}
    WHERE event_name = 'battle_start_loadout'{{filters}}{{level_filter}}
      AND {{unit_names}} IS NOT NULL
  ),
  individual_units AS (
    SELECT trimBoth(arrayJoin(splitByChar(',', unit_names))) AS unit_name, unit_names AS full_loadout
    FROM loadout_events
  ),
  unit_frequency AS (
    SELECT unit_name, count() AS usage_count, uniqExact(full_loadout) AS unique_loadouts
    FROM individual_units
    WHERE unit_name != ''
    GROUP BY unit_name
  ),
  loadout_combinations AS (
    SELECT unit_names AS loadout, count() AS usage_count
    FROM loadout_events
    GROUP BY unit_names
    ORDER BY usage_count DESC, loadout ASC
    LIMIT 20
  )
SELECT result_type, name, usage_count, additional_info
FROM (
  SELECT 'unit_frequency' AS result_type, unit_name AS name, usage_count,
    CAST(unique_loadouts AS Nullable(UInt64)) AS additional_info
  FROM unit_frequency
  UNION ALL
  SELECT 'top_loadouts' AS result_type, loadout AS name, usage_count,
    CAST(NULL AS Nullable(UInt64)) AS additional_info
  FROM loadout_combinations
)
ORDER BY result_type ASC, usage_count DESC, name ASC
`

const unitUpgradeSQL = `
WITH {{cohort}}unit_upgrades AS (
    SELECT assumeNotNull({{unit_name}}) AS unit_name, assumeNotNull({{level}}) AS upgrade_level
    FROM {{table}} e{{join}}
    WHERE event_name = 'unit_upgrade'{{filters}}
      AND {{unit_name}} IS NOT NULL
      AND {{level}} IS NOT NULL
  )
SELECT
  unit_name,
  count() AS total_upgrades,
  round(avg(upgrade_level), 2) AS avg_upgrade_level,
  min(upgrade_level) AS min_level,
  max(upgrade_level) AS max_level
FROM unit_upgrades
WHERE unit_name != ''
GROUP BY unit_name
ORDER BY total_upgrades DESC, unit_name ASC
`

// users_reached_level counts users whose highest level is at least this one
// the next level's count comes from a one row lookahead ordered by level
const churnSQL = `
WITH {{cohort}}level_events AS (
    SELECT
      e.user_pseudo_id AS user_pseudo_id,
      e.event_name AS event_name,
      assumeNotNull({{level}}) AS level
    FROM {{table}} e{{join}}
    WHERE event_name IN ('level_complete', 'level_fail'){{filters}}
      AND {{level}} IS NOT NULL
  ),
  user_max_level AS (
    SELECT user_pseudo_id, max(level) AS max_level_reached
    FROM level_events
    GROUP BY user_pseudo_id
  ),
  all_levels AS (
    SELECT DISTINCT level FROM level_events
  ),
  level_reach_counts AS (
    SELECT l.level AS level, uniqExactIf(u.user_pseudo_id, u.max_level_reached >= l.level) AS users_reached_level
    FROM all_levels l
    CROSS JOIN user_max_level u
    GROUP BY l.level
  ),
  level_difficulty AS (
    SELECT
      level,
      countIf(event_name = 'level_fail') AS failures,
      countIf(event_name = 'level_complete') AS completions,
      count() AS total_attempts
    FROM level_events
    GROUP BY level
  ),
  level_retention AS (
    SELECT
      lrc.level AS level,
      lrc.users_reached_level AS users_reached_level,
      leadInFrame(toNullable(toInt64(lrc.users_reached_level)), 1)
        OVER (ORDER BY lrc.level ASC ROWS BETWEEN CURRENT ROW AND 1 FOLLOWING) AS users_reached_next_level,
      ld.failures AS failures,
      ld.completions AS completions,
      ld.total_attempts AS total_attempts
    FROM level_reach_counts lrc
    LEFT JOIN level_difficulty ld ON lrc.level = ld.level
  )
SELECT
  level,
  users_reached_level,
  ifNull(toInt64(users_reached_level) - users_reached_next_level, 0) AS users_churned_at_level,
  round(ifNull((toInt64(users_reached_level) - users_reached_next_level) * 100.0 / nullIf(users_reached_level, 0), 0), 2) AS churn_rate,
  round(failures * 100.0 / nullIf(total_attempts, 0), 2) AS failure_rate,
  round(total_attempts / nullIf(completions, 0), 2) AS difficulty_score
FROM level_retention
ORDER BY level ASC
LIMIT {{limit}}
`

const boosterBoxSQL = `
WITH {{cohort}}boxes AS (
    SELECT e.user_pseudo_id AS user_pseudo_id, assumeNotNull({{box_id}}) AS box_id
    FROM {{table}} e{{join}}
    WHERE event_name = 'booster_box_opened'{{filters}}
      AND {{box_id}} IS NOT NULL
  )
SELECT
  box_id,
  count() AS times_opened,
  uniqExact(user_pseudo_id) AS unique_users,
  round(count() / uniqExact(user_pseudo_id), 2) AS avg_per_user
FROM boxes
GROUP BY box_id
ORDER BY times_opened DESC, box_id ASC
`

// upgrade_level stays nullable; an upgrade without a level is still counted
const baseStationSQL = `
WITH {{cohort}}upgrades AS (
    SELECT e.user_pseudo_id AS user_pseudo_id, assumeNotNull({{skill}}) AS skill, {{level}} AS upgrade_level
    FROM {{table}} e{{join}}
    WHERE event_name = 'base_station_upgrade'{{filters}}
      AND {{skill}} IS NOT NULL
  )
SELECT
  skill,
  upgrade_level,
  count() AS upgrade_count,
  uniqExact(user_pseudo_id) AS unique_users
FROM upgrades
GROUP BY skill, upgrade_level
ORDER BY skill ASC, upgrade_level ASC NULLS FIRST
`

const overallStatsSQL = `
WITH {{cohort}}cohort_events AS (
    SELECT e.user_pseudo_id AS user_pseudo_id, e.event_name AS event_name
    FROM {{table}} e{{join}}
    WHERE 1 = 1{{filters}}
  )
SELECT
  uniqExact(user_pseudo_id) AS total_users,
  uniqExactIf(user_pseudo_id, event_name = 'level_start') AS users_who_played,
  countIf(event_name LIKE 'RV_Watched_%') AS total_rewarded_ads,
  countIf(event_name = 'level_complete') AS total_level_completions,
  countIf(event_name = 'level_fail') AS total_level_failures,
  countIf(event_name = 'unit_upgrade') AS total_unit_upgrades,
  countIf(event_name = 'booster_box_opened') AS total_booster_boxes_opened
FROM cohort_events
`

// option lists drop their own dimension from the cohort and the filters
const availableCountriesSQL = `
WITH {{cohort}}user_countries AS (
    SELECT DISTINCT e.user_pseudo_id AS user_pseudo_id, assumeNotNull(e.country) AS country
    FROM {{table}} e{{join}}
    WHERE e.country IS NOT NULL{{filters}}
  )
SELECT country, uniqExact(user_pseudo_id) AS user_count
FROM user_countries
GROUP BY country
ORDER BY user_count DESC, country ASC
LIMIT 100
`

const availableVersionsSQL = `
WITH {{cohort}}user_versions AS (
    SELECT DISTINCT e.user_pseudo_id AS user_pseudo_id, assumeNotNull(e.app_version) AS version
    FROM {{table}} e{{join}}
    WHERE e.app_version IS NOT NULL{{filters}}
  )
SELECT version, uniqExact(user_pseudo_id) AS user_count
FROM user_versions
GROUP BY version
ORDER BY version DESC
LIMIT 50
`
